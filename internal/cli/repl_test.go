package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects printlnFn into a slice for the duration of a test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error    { return f.record("login") }
func (f *fakeExec) Logout(ctx context.Context) error   { return f.record("logout") }
func (f *fakeExec) Groups(ctx context.Context) error   { return f.record("groups") }
func (f *fakeExec) Exercises(ctx context.Context, group string) error {
	return f.record("exercises " + group)
}
func (f *fakeExec) ShowExercise(ctx context.Context, id string) error {
	return f.record("show " + id)
}
func (f *fakeExec) Done(ctx context.Context, id string) error { return f.record("done " + id) }
func (f *fakeExec) History(ctx context.Context) error         { return f.record("history") }
func (f *fakeExec) Profile(ctx context.Context) error         { return f.record("profile") }
func (f *fakeExec) WhoAmI(ctx context.Context) error          { return f.record("whoami") }
func (f *fakeExec) Ping(ctx context.Context) error            { return f.record("ping") }

func runLines(t *testing.T, f *fakeExec, input string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	runLines(t, f, "login\ngroups\nexercises lower back\nshow 3\ndone 3\nhistory\nprofile\nwhoami\nping\nlogout\nexit\n")

	assert.Equal(t, []string{
		"login",
		"groups",
		"exercises lower back",
		"show 3",
		"done 3",
		"history",
		"profile",
		"whoami",
		"ping",
		"logout",
	}, f.calls)
}

func TestREPL_Aliases(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	runLines(t, f, "g\nh\nquit\n")

	assert.Equal(t, []string{"groups", "history"}, f.calls)
}

func TestREPL_UsageForMissingArgs(t *testing.T) {
	lines := captureOutput(t)
	f := &fakeExec{}

	runLines(t, f, "exercises\nshow\ndone\nexit\n")

	require.Empty(t, f.calls, "commands without args must not reach the handlers")
	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Usage: exercises <group>")
	assert.Contains(t, out, "Usage: show <id>")
	assert.Contains(t, out, "Usage: done <id>")
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)

	runLines(t, &fakeExec{}, "frobnicate\nexit\n")

	assert.Contains(t, strings.Join(*lines, "\n"), "Unknown command: frobnicate")
}

func TestREPL_BlankLinesSkipped(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	runLines(t, f, "\n   \ngroups\nexit\n")

	assert.Equal(t, []string{"groups"}, f.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)
	runLines(t, &fakeExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, "\n"), "register, login, exit")

	lines = captureOutput(t)
	runLines(t, &fakeExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, "\n"), "groups, exercises <group>")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}

	// no exit command; the scanner just runs dry
	runLines(t, f, "groups\n")

	assert.Equal(t, []string{"groups"}, f.calls)
}
