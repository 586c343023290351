package cli

import (
	"fmt"
	"os"

	"github.com/handiism/art-exposure/internal/config"
	"github.com/spf13/cobra"
)

// configCommand creates the config management command.
func (c *CLI) configCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	cmd.AddCommand(c.configInitCommand(f))
	cmd.AddCommand(c.configPathCommand(f))

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand(f *flags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(f)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.DefaultSettings().Save(path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintln(c.out, successLine("Wrote %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, path)
			return nil
		},
	}
}
