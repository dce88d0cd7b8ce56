package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calvinalkan/arrfill/internal/config"
	"github.com/calvinalkan/arrfill/internal/demo"

	flag "github.com/spf13/pflag"
)

var errNoArgs = errors.New("demo takes no arguments")

// DemoCmd returns the demo command.
func DemoCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("demo", flag.ContinueOnError),
		Usage: "demo",
		Short: "Run the fill and generate walkthrough (default)",
		Long: `Run the fill and generate walkthrough.

Each step mutates its own sample array in place and prints the result on one
line, elements separated by the configured separator:

  fill        [1 2 3 4 5] with 100
  fill        [true true true] with false
  fill range  [a b c q w e] positions [2, 4) with h
  generate    five words, once per callable form (named function,
              function literal, method value, closure)`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %v", errNoArgs, args)
			}

			return execDemo(io, cfg)
		},
	}
}

func execDemo(io *IO, cfg *config.Config) error {
	printer := demo.Printer{
		Separator: cfg.Separator,
		Trailing:  cfg.TrailingSeparator,
	}

	return demo.New(io.Out(), printer).Run()
}
