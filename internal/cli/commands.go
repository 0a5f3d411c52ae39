package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	errorvalues "github.com/limbo/dailypulse/internal/error_values"
	"github.com/limbo/dailypulse/internal/service"
	"github.com/limbo/dailypulse/pkg/entity"
	"github.com/spf13/cobra"
)

var moodNames = map[string]entity.Mood{
	"happy":   entity.MoodHappy,
	"neutral": entity.MoodNeutral,
	"sad":     entity.MoodSad,
	"angry":   entity.MoodAngry,
	"tired":   entity.MoodTired,
}

// parseMood accepts either the glyph or its name.
func parseMood(arg string) (entity.Mood, error) {
	if m, ok := moodNames[strings.ToLower(arg)]; ok {
		return m, nil
	}
	if m := entity.Mood(arg); m.Valid() {
		return m, nil
	}
	return entity.MoodNone, fmt.Errorf("unknown mood %q, expected one of happy, neutral, sad, angry, tired", arg)
}

// describe turns service sentinels into short messages.
func describe(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		return errors.New("no habit with that id, see `pulse habits`")
	case errors.Is(err, errorvalues.ErrDateNotAllowed):
		return errors.New("cannot log for a future date")
	case errors.Is(err, errorvalues.ErrInvalidDate), errors.Is(err, errorvalues.ErrValidation):
		return fmt.Errorf("invalid input: %w", err)
	}
	return err
}

func newHabitsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "List habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(cmd.Context(), app.UserID)
			if err != nil {
				return describe(err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHABIT\tCATEGORY\tTARGET")
			for _, h := range habits {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%d\n", h.ID, h.Icon, h.Name, h.Category, h.Target)
			}
			return w.Flush()
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's progress and the current streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			overview, err := app.Analytics.Overview(ctx, app.UserID)
			if err != nil {
				return describe(err)
			}
			today, err := app.Logs.Today(ctx, app.UserID)
			if err != nil {
				return describe(err)
			}
			habits, err := app.Habits.List(ctx, app.UserID)
			if err != nil {
				return describe(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  streak: %d (best %d)  done: %d%%", overview.Today, overview.CurrentStreak, overview.LongestStreak, overview.TodayCompletion)
			if today.Mood != entity.MoodNone {
				fmt.Fprintf(out, "  mood: %s", today.Mood)
			}
			fmt.Fprintln(out)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, h := range habits {
				mark := " "
				if today.Progress[h.ID] >= h.Target {
					mark = "x"
				}
				fmt.Fprintf(w, "[%s]\t%s %s\t%d/%d\t(%s)\n", mark, h.Icon, h.Name, today.Progress[h.ID], h.Target, h.ID)
			}
			return w.Flush()
		},
	}
}

func newWeekCmd(app *App) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show completion for each day of the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := app.Analytics.Week(cmd.Context(), app.UserID, date)
			if err != nil {
				return describe(err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range days {
				fmt.Fprintf(w, "%s\t%s\t%s\t%3d%%\n", d.Label, d.Date, bar(d.Completion), d.Completion)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "any day of the week to show (YYYY-MM-DD), default today")
	return cmd
}

func bar(percent int) string {
	filled := percent / 10
	return strings.Repeat("#", filled) + strings.Repeat(".", 10-filled)
}

func newLogCmd(app *App) *cobra.Command {
	var (
		toggle bool
		date   string
	)
	cmd := &cobra.Command{
		Use:   "log <habit-id> [delta]",
		Short: "Add progress to a habit (delta defaults to 1, may be negative)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &service.ProgressRequest{HabitID: args[0], Delta: 1, Toggle: toggle, Date: date}
			if len(args) == 2 {
				delta, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid delta %q", args[1])
				}
				req.Delta = delta
			}
			log, err := app.Logs.LogProgress(cmd.Context(), app.UserID, req)
			if err != nil {
				return describe(err)
			}
			habit, err := app.Habits.Get(cmd.Context(), app.UserID, args[0])
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d/%d on %s\n", habit.Icon, habit.Name, log.Progress[habit.ID], habit.Target, log.Date)
			return nil
		},
	}
	cmd.Flags().BoolVar(&toggle, "toggle", false, "flip the habit between done and not done")
	cmd.Flags().StringVar(&date, "date", "", "day to log for (YYYY-MM-DD), default today")
	return cmd
}

func newMoodCmd(app *App) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "mood <mood>",
		Short: "Set the mood of the day (happy, neutral, sad, angry, tired)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := parseMood(args[0])
			if err != nil {
				return err
			}
			log, err := app.Logs.SetMood(cmd.Context(), app.UserID, &service.MoodRequest{Mood: mood, Date: date})
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mood for %s: %s\n", log.Date, log.Mood)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to set the mood for (YYYY-MM-DD), default today")
	return cmd
}

func newQuoteCmd(app *App) *cobra.Command {
	var tips bool
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if tips {
				for _, tip := range app.Quotes.Tips() {
					fmt.Fprintln(out, "- "+tip)
				}
				return nil
			}
			quote, err := app.Quotes.Quote(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%q\n", quote)
			return nil
		},
	}
	cmd.Flags().BoolVar(&tips, "tips", false, "print habit building tips instead")
	return cmd
}
