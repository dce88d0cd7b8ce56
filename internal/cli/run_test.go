package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/arrfill/internal/cli"
)

const wantDemo = `100 100 100 100 100
false false false
a b h h w e
0-named-0 1-named-1 2-named-2 3-named-3 4-named-4
0-literal-0 1-literal-1 2-literal-2 3-literal-3 4-literal-4
0-method-0 1-method-1 2-method-2 3-method-3 4-method-4
0-closure-0 1-closure-1 2-closure-2 3-closure-3 4-closure-4
`

func Test_Bare_Command_Runs_Demo_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	dir := t.TempDir()
	exitCode := cli.Run(&stdout, &stderr, []string{"arrfill", "-C", dir}, map[string]string{"HOME": dir})

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	if diff := cmp.Diff(wantDemo, stdout.String()); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func Test_Bare_Command_Uses_Working_Directory_When_Cwd_Not_Given(t *testing.T) {
	t.Parallel()

	// The package directory has no .arrfill.json, so defaults apply.
	if _, err := os.Stat(".arrfill.json"); err == nil {
		t.Skip(".arrfill.json present in package directory")
	}

	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(&stdout, &stderr, []string{"arrfill"}, map[string]string{})

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d, stderr=%s", got, want, stderr.String())
	}

	if got, want := stdout.String(), wantDemo; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Demo_Command_Matches_Bare_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if got, want := c.MustRun("demo"), wantDemo; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Demo_Rejects_Arguments_When_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("demo", "extra")

	cli.AssertContains(t, stderr, "error:")
	cli.AssertContains(t, stderr, "demo takes no arguments")
}

func Test_Separator_Flag_Changes_Output_When_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--separator", ",", "--trailing-separator")

	cli.AssertContains(t, stdout, "100,100,100,100,100,\n")
	cli.AssertContains(t, stdout, "a,b,h,h,w,e,\n")
}

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "demo")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	// Should show valid global options
	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--help")
	cli.AssertContains(t, stderr, "--cwd")
	cli.AssertContains(t, stderr, "--config")
	cli.AssertContains(t, stderr, "--separator")
}

func Test_Empty_Separator_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--separator=", "demo")

	cli.AssertContains(t, stderr, "separator cannot be empty")
	cli.AssertContains(t, stderr, "Global flags:")
}

func Test_Invalid_Color_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--color", "rainbow")

	cli.AssertContains(t, stderr, "color must be one of auto, always, never")
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("shuffle")

	cli.AssertContains(t, stderr, "unknown command: shuffle")
	cli.AssertContains(t, stderr, "Commands:")
	cli.AssertContains(t, stderr, "print-config")
}

func Test_Help_Lists_Commands_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}} {
		c := cli.NewCLI(t)
		stdout := c.MustRun(args...)

		cli.AssertContains(t, stdout, "arrfill - array fill and generate walkthrough")
		cli.AssertContains(t, stdout, "Global flags:")
		cli.AssertContains(t, stdout, "demo")
		cli.AssertContains(t, stdout, "print-config")
		cli.AssertNotContains(t, stdout, "100 100")
	}
}

func Test_Command_Help_Shows_Long_Description_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("demo", "--help")

	cli.AssertContains(t, stdout, "Usage: arrfill demo")
	cli.AssertContains(t, stdout, "callable form")
	cli.AssertNotContains(t, stdout, "100 100")
}

func Test_Error_Prefix_Is_Coloured_When_Color_Always(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--color", "always", "demo", "extra")

	cli.AssertContains(t, stderr, "\x1b[")
	cli.AssertContains(t, stderr, "demo takes no arguments")
}

func Test_Error_Prefix_Is_Plain_When_Output_Not_Terminal(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("demo", "extra")

	cli.AssertNotContains(t, stderr, "\x1b[")

	if got, want := stderr[:len("error:")], "error:"; got != want {
		t.Errorf("prefix=%q, want=%q", got, want)
	}
}
