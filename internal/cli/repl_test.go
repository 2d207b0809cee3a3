package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) Dashboard(ctx context.Context) error  { return f.record("dashboard", nil) }
func (f *fakeExec) NewBug(ctx context.Context) error     { return f.record("bug", nil) }
func (f *fakeExec) NewFeature(ctx context.Context) error { return f.record("feature", nil) }
func (f *fakeExec) Reports(ctx context.Context) error    { return f.record("reports", nil) }
func (f *fakeExec) SetPriority(ctx context.Context, args []string) error {
	return f.record("priority", args)
}
func (f *fakeExec) SetStatus(ctx context.Context, args []string) error {
	return f.record("status", args)
}
func (f *fakeExec) Convert(ctx context.Context, args []string) error {
	return f.record("convert", args)
}
func (f *fakeExec) Messages(ctx context.Context) error { return f.record("messages", nil) }
func (f *fakeExec) Compose(ctx context.Context) error  { return f.record("compose", nil) }
func (f *fakeExec) ReadMessage(ctx context.Context, args []string) error {
	return f.record("read", args)
}
func (f *fakeExec) Dismiss(ctx context.Context, args []string) error {
	return f.record("dismiss", args)
}
func (f *fakeExec) Export(ctx context.Context) error   { return f.record("export", nil) }
func (f *fakeExec) Settings(ctx context.Context) error { return f.record("settings", nil) }
func (f *fakeExec) Reload(ctx context.Context) error   { return f.record("reload", nil) }

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"dashboard",
		"bug",
		"reports",
		"priority b-1",
		"convert b-1",
		"messages",
		"read m-1",
		"export",
		"unknowncmd",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"dashboard", "bug", "reports", "priority", "convert", "messages", "read", "export"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, exec.calls[i], want[i])
		}
	}
}

func TestRunREPL_PassesArgs(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("status b-1\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.args) != 1 || len(exec.args[0]) != 1 || exec.args[0][0] != "b-1" {
		t.Fatalf("args mismatch: %v", exec.args)
	}
}

func TestRunREPL_Aliases(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("d\nr\nm\nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	want := []string{"dashboard", "reports", "messages"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesAndEOF(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\n \n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
