// Package cli implements the pulse command line client for a single local
// profile kept in a SQLite file.
package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/dailypulse/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// LocalProfileID identifies the only profile of a local database.
var LocalProfileID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("dailypulse-local-profile"))

type QuoteProvider interface {
	Quote(ctx context.Context) (string, error)
	Tips() []string
}

// App holds references to all services used by CLI commands.
type App struct {
	UserID    uuid.UUID
	Habits    service.HabitsServiceI
	Logs      service.LogsServiceI
	Analytics service.AnalyticsServiceI
	Quotes    QuoteProvider
}

// GlobalFlags are shared by every subcommand. main parses them before the
// App is built, the root command declares them for help and validation.
type GlobalFlags struct {
	DBPath   string
	TimeZone string
}

func (gf *GlobalFlags) Register(fs *pflag.FlagSet, defaultDB string) {
	fs.StringVar(&gf.DBPath, "db", defaultDB, "path to the local database file")
	fs.StringVar(&gf.TimeZone, "tz", "", "IANA time zone used to decide what \"today\" is")
}

// NewRootCmd creates the top-level "pulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App, defaultDB string) *cobra.Command {
	root := &cobra.Command{
		Use:           "pulse",
		Short:         "Track daily habits, moods and streaks",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	var flags GlobalFlags
	flags.Register(root.PersistentFlags(), defaultDB)

	root.AddCommand(
		newHabitsCmd(app),
		newStatusCmd(app),
		newWeekCmd(app),
		newLogCmd(app),
		newMoodCmd(app),
		newQuoteCmd(app),
	)
	return root
}
