// Package cli implements the arrfill command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/arrfill/internal/config"

	flag "github.com/spf13/pflag"
)

const defaultCommand = "demo"

var errUnknownCommand = errors.New("unknown command")

// globalFlags holds the parsed global flag set.
type globalFlags struct {
	fs         *flag.FlagSet
	help       bool
	workDir    string
	configPath string
	separator  string
	trailing   bool
	color      string
}

func newGlobalFlags() *globalFlags {
	flags := &globalFlags{fs: flag.NewFlagSet("arrfill", flag.ContinueOnError)}

	fs := flags.fs
	fs.SetInterspersed(false) // everything after the command name belongs to it
	fs.SetOutput(&strings.Builder{})
	fs.BoolVarP(&flags.help, "help", "h", false, "Show help")
	fs.StringVarP(&flags.workDir, "cwd", "C", "", "Run as if started in `dir`")
	fs.StringVarP(&flags.configPath, "config", "c", "", "Use specified config `file`")
	fs.StringVar(&flags.separator, "separator", "", "Element separator (default \" \")")
	fs.BoolVar(&flags.trailing, "trailing-separator", false, "Also print the separator after the last element")
	fs.StringVar(&flags.color, "color", "", "Error colour: auto, always or never")

	return flags
}

func (g *globalFlags) overrides() config.Overrides {
	var overrides config.Overrides

	if g.fs.Changed("separator") {
		overrides.Separator = &g.separator
	}

	if g.fs.Changed("trailing-separator") {
		overrides.TrailingSeparator = &g.trailing
	}

	if g.fs.Changed("color") {
		overrides.Color = &g.color
	}

	return overrides
}

// Run is the main entry point. Returns exit code.
//
// With no command the demo runs, so a bare "arrfill" prints the walkthrough
// and exits 0.
func Run(out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)
	o.SetColor(config.ColorAuto, env)

	globals := newGlobalFlags()

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err := globals.fs.Parse(cmdArgs)
	if err != nil {
		o.Error(err)
		o.ErrPrintln()
		printUsage(errOut, globals.fs, nil)

		return 1
	}

	workDir := globals.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			o.Error(fmt.Errorf("cannot get working directory: %w", err))

			return 1
		}
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDir:    workDir,
		ConfigPath: globals.configPath,
		Overrides:  globals.overrides(),
		Env:        env,
	})
	if err != nil {
		o.Error(err)
		o.ErrPrintln()
		printUsage(errOut, globals.fs, nil)

		return 1
	}

	o.SetColor(cfg.Color, env)

	commands := []*Command{
		DemoCmd(&cfg),
		PrintConfigCmd(&cfg),
		InitConfigCmd(&cfg),
	}

	if globals.help {
		printUsage(out, globals.fs, commands)

		return 0
	}

	remaining := globals.fs.Args()

	name := defaultCommand
	if len(remaining) > 0 {
		name = remaining[0]
		remaining = remaining[1:]
	}

	if name == "help" {
		printUsage(out, globals.fs, commands)

		return 0
	}

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(context.Background(), o, remaining)
		}
	}

	o.Error(fmt.Errorf("%w: %s", errUnknownCommand, name))
	o.ErrPrintln()
	printUsage(errOut, globals.fs, commands)

	return 1
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, fs *flag.FlagSet, commands []*Command) {
	fprintln(w, "arrfill - array fill and generate walkthrough")
	fprintln(w)
	fprintln(w, "Usage: arrfill [global flags] [command] [args]")
	fprintln(w)
	fprintln(w, "Global flags:")
	_, _ = io.WriteString(w, fs.FlagUsages())

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}
