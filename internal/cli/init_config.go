package cli

import (
	"context"
	"path/filepath"

	"github.com/calvinalkan/arrfill/internal/config"

	flag "github.com/spf13/pflag"
)

// InitConfigCmd returns the init-config command.
func InitConfigCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("init-config", flag.ContinueOnError)
	fs.Bool("force", false, "Overwrite an existing file")
	fs.StringP("output", "o", "", "Write to `file` instead of "+config.FileName)

	return &Command{
		Flags: fs,
		Usage: "init-config [flags]",
		Short: "Write the resolved configuration to " + config.FileName,
		Long: `Write the resolved configuration as a commented JSONC file.

The file reflects defaults, loaded config files and global flags, so
"arrfill --trailing-separator init-config" records that choice for later runs.`,
		Exec: func(_ context.Context, io *IO, _ []string) error {
			force, _ := fs.GetBool("force")
			output, _ := fs.GetString("output")

			return execInitConfig(io, cfg, output, force)
		},
	}
}

func execInitConfig(io *IO, cfg *config.Config, output string, force bool) error {
	path := output
	if path == "" {
		path = config.FileName
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.EffectiveCwd, path)
	}

	err := config.Write(path, *cfg, force)
	if err != nil {
		return err
	}

	io.Println("Wrote", path)

	return nil
}
