package entity

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
}

type HabitKind string

const (
	KindBoolean   HabitKind = "boolean"
	KindCountable HabitKind = "countable"
)

type Category string

const (
	CategoryHealth       Category = "Health"
	CategoryProductivity Category = "Productivity"
	CategoryMindfulness  Category = "Mindfulness"
	CategoryFitness      Category = "Fitness"
	CategoryLearning     Category = "Learning"
	CategoryOther        Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryProductivity,
	CategoryMindfulness,
	CategoryFitness,
	CategoryLearning,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Mood is one of a closed set of glyphs. The zero value means no mood was set.
type Mood string

const (
	MoodNone    Mood = ""
	MoodHappy   Mood = "😊"
	MoodNeutral Mood = "😐"
	MoodSad     Mood = "😔"
	MoodAngry   Mood = "😡"
	MoodTired   Mood = "😴"
)

var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodAngry, MoodTired}

func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

type Habit struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Category Category  `json:"category"`
	Kind     HabitKind `json:"type"`
	// Boolean habits always have a target of 1.
	Target int    `json:"target"`
	Color  string `json:"color"`
}

// HabitProgress maps habit id to the amount logged that day.
type HabitProgress map[string]int

type DailyLog struct {
	Date     string        `json:"date"`
	Mood     Mood          `json:"mood"`
	Progress HabitProgress `json:"progress"`
}

// Logs is the log store keyed by day key (YYYY-MM-DD).
type Logs map[string]DailyLog

// DefaultHabits is the starter set handed to users with nothing stored yet.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "1", Name: "Drink Water", Icon: "💧", Category: CategoryHealth, Kind: KindCountable, Target: 8, Color: "blue"},
		{ID: "2", Name: "Read a Book", Icon: "📚", Category: CategoryLearning, Kind: KindBoolean, Target: 1, Color: "indigo"},
		{ID: "3", Name: "Workout", Icon: "💪", Category: CategoryFitness, Kind: KindBoolean, Target: 1, Color: "red"},
		{ID: "4", Name: "Meditate", Icon: "🧘", Category: CategoryMindfulness, Kind: KindBoolean, Target: 1, Color: "purple"},
		{ID: "5", Name: "Code for 1 hour", Icon: "💻", Category: CategoryProductivity, Kind: KindBoolean, Target: 1, Color: "green"},
	}
}

type DayCompletion struct {
	Date       string `json:"date"`
	Label      string `json:"label"`
	Completion int    `json:"completion"`
}

type MoodCount struct {
	Mood  Mood `json:"mood"`
	Count int  `json:"count"`
}

type HabitSuccess struct {
	HabitID     string  `json:"habit_id"`
	Name        string  `json:"name"`
	CompletedOn int     `json:"completed_days"`
	Days        int     `json:"days"`
	Rate        float64 `json:"rate"`
}

type Overview struct {
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	TodayCompletion int    `json:"today_completion"`
	TotalHabits     int    `json:"total_habits"`
	LoggedDays      int    `json:"logged_days"`
	Today           string `json:"today"`
}

// PulseData is everything persisted for one user.
type PulseData struct {
	Habits []Habit `json:"habits"`
	Logs   Logs    `json:"logs"`
}
