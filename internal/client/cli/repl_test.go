package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) SwitchTab(ctx context.Context, tab Tab) error {
	f.calls = append(f.calls, "tab:"+string(tab))
	return nil
}
func (f *fakeExec) Next(ctx context.Context) error    { f.calls = append(f.calls, "next"); return nil }
func (f *fakeExec) Prev(ctx context.Context) error    { f.calls = append(f.calls, "prev"); return nil }
func (f *fakeExec) Verify(ctx context.Context) error  { f.calls = append(f.calls, "verify"); return nil }
func (f *fakeExec) Reject(ctx context.Context) error  { f.calls = append(f.calls, "reject"); return nil }
func (f *fakeExec) Reload(ctx context.Context) error  { f.calls = append(f.calls, "reload"); return nil }
func (f *fakeExec) Show(ctx context.Context) error    { f.calls = append(f.calls, "show"); return nil }
func (f *fakeExec) Dismiss(ctx context.Context) error { f.calls = append(f.calls, "dismiss"); return nil }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"users",
		"n",
		"next",
		"p",
		"",
		"V",
		"reject",
		"r",
		"reload",
		"show",
		"dismiss",
		"events",
		"ads",
		"foobar",
		"exit",
		"verify",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input), false)

	assert.Equal(t, []string{
		"tab:users", "next", "next", "prev", "verify", "reject", "reject",
		"reload", "show", "dismiss", "tab:events", "tab:events",
	}, exec.calls)
	assert.Equal(t, []string{helpText, "Unknown command: foobar", "Bye!"}, *out)
}

func TestRunREPL_PromptOnlyWhenInteractive(t *testing.T) {
	out := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "events ready 1/2" },
		bufio.NewScanner(strings.NewReader("quit\n")), true)

	assert.Equal(t, []string{"mod (events ready 1/2)> ", "Bye!"}, *out)
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("show")), false)

	assert.Equal(t, []string{"show"}, exec.calls)
	assert.Empty(t, *out)
}
