package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var fixedNow = time.Date(2025, time.March, 5, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func openTestApp(t *testing.T, dbPath string) (*App, func() error) {
	t.Helper()
	app, closeFn, err := OpenApp(GlobalFlags{DBPath: dbPath}, fixedClock)
	require.NoError(t, err)
	return app, closeFn
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app, "")
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestHabitsCmd(t *testing.T) {
	app, closeFn := openTestApp(t, filepath.Join(t.TempDir(), "pulse.db"))
	defer closeFn()

	out, err := executeCmd(t, app, "habits")
	require.NoError(t, err)
	assert.Contains(t, out, "Drink Water")
	assert.Contains(t, out, "Code for 1 hour")
	assert.Contains(t, out, "Mindfulness")
	// header plus five default habits
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestLogAndStatus(t *testing.T) {
	app, closeFn := openTestApp(t, filepath.Join(t.TempDir(), "pulse.db"))
	defer closeFn()

	out, err := executeCmd(t, app, "log", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "💧 Drink Water: 3/8 on 2025-03-05\n", out)

	out, err = executeCmd(t, app, "log", "1", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "8/8")

	out, err = executeCmd(t, app, "log", "1", "--", "-2")
	require.NoError(t, err)
	assert.Contains(t, out, "6/8")

	out, err = executeCmd(t, app, "log", "2", "--toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "📚 Read a Book: 1/1")

	out, err = executeCmd(t, app, "mood", "happy")
	require.NoError(t, err)
	assert.Equal(t, "mood for 2025-03-05: 😊\n", out)

	out, err = executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-05")
	assert.Contains(t, out, "streak: 0")
	assert.Contains(t, out, "done: 20%")
	assert.Contains(t, out, "mood: 😊")
	assert.Contains(t, out, "6/8")
	assert.Contains(t, out, "[x]")
}

func TestLogPastDayBuildsStreak(t *testing.T) {
	app, closeFn := openTestApp(t, filepath.Join(t.TempDir(), "pulse.db"))
	defer closeFn()

	for _, day := range []string{"2025-03-04", "2025-03-05"} {
		for _, id := range []string{"2", "3", "4", "5"} {
			_, err := executeCmd(t, app, "log", id, "--date", day)
			require.NoError(t, err)
		}
		_, err := executeCmd(t, app, "log", "1", "8", "--date", day)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "streak: 2 (best 2)")
	assert.Contains(t, out, "done: 100%")

	out, err = executeCmd(t, app, "week", "--date", "2025-03-05")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "Mon")
	assert.Contains(t, lines[0], "2025-03-03")
	assert.Contains(t, lines[1], "100%")
	assert.Contains(t, lines[2], "##########")
	assert.Contains(t, lines[6], "0%")
}

func TestCmdErrors(t *testing.T) {
	app, closeFn := openTestApp(t, filepath.Join(t.TempDir(), "pulse.db"))
	defer closeFn()

	tests := []struct {
		Desc    string
		Args    []string
		WantErr string
	}{
		{Desc: "unknown habit", Args: []string{"log", "ghost"}, WantErr: "no habit"},
		{Desc: "future day", Args: []string{"log", "1", "--date", "2025-03-06"}, WantErr: "future"},
		{Desc: "bad date", Args: []string{"mood", "sad", "--date", "05.03.2025"}, WantErr: "invalid input"},
		{Desc: "bad delta", Args: []string{"log", "1", "many"}, WantErr: "invalid delta"},
		{Desc: "unknown mood", Args: []string{"mood", "grumpy"}, WantErr: "unknown mood"},
		{Desc: "missing habit id", Args: []string{"log"}, WantErr: "arg(s)"},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := executeCmd(t, app, tc.Args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.WantErr)
		})
	}
}

func TestMoodByGlyph(t *testing.T) {
	app, closeFn := openTestApp(t, filepath.Join(t.TempDir(), "pulse.db"))
	defer closeFn()

	out, err := executeCmd(t, app, "mood", "😴", "--date", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "mood for 2025-03-01: 😴\n", out)
}

func TestProgressSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pulse.db")
	app, closeFn := openTestApp(t, path)
	_, err := executeCmd(t, app, "log", "1", "5")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "mood", "tired")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	app, closeFn = openTestApp(t, path)
	defer closeFn()
	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "5/8")
	assert.Contains(t, out, "mood: 😴")
}

func TestQuoteCmd(t *testing.T) {
	app, closeFn := openTestApp(t, ":memory:")
	defer closeFn()

	out, err := executeCmd(t, app, "quote")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `"`))

	out, err = executeCmd(t, app, "quote", "--tips")
	require.NoError(t, err)
	tips := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, tips, len(app.Quotes.Tips()))
	for _, tip := range tips {
		assert.True(t, strings.HasPrefix(tip, "- "))
	}
}

func TestOpenAppTimeZone(t *testing.T) {
	// 20:00 UTC is already the next day in Tokyo
	app, closeFn, err := OpenApp(GlobalFlags{DBPath: ":memory:", TimeZone: "Asia/Tokyo"}, fixedClock)
	require.NoError(t, err)
	defer closeFn()

	out, err := executeCmd(t, app, "log", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-06")

	_, _, err = OpenApp(GlobalFlags{DBPath: ":memory:", TimeZone: "Mars/Olympus"}, fixedClock)
	assert.Error(t, err)
}

func TestParseMood(t *testing.T) {
	m, err := parseMood("Angry")
	require.NoError(t, err)
	assert.Equal(t, "😡", string(m))
	_, err = parseMood("")
	assert.Error(t, err)
}
