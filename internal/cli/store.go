package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/store"
)

// storeCommand creates the store command with subcommands for published documents.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Read or delete published documents",
		Long:  `Read or delete documents published with lwcharts build --publish.`,
	}

	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	cmd.AddCommand(c.storePathCommand())

	return cmd
}

func (c *CLI) storeGetCommand() *cobra.Command {
	var flags storeFlags
	var indent bool

	cmd := &cobra.Command{
		Use:   "get <chart-id>",
		Short: "Print the document published for a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			payload, err := store.MustGet(ctx, runner.Store, runner.Keyer.DocumentKey(args[0]))
			if err != nil {
				return errors.Wrap(errors.ErrCodeNotFound, err, "no document published for %s", args[0])
			}
			if indent {
				var buf bytes.Buffer
				if err := json.Indent(&buf, payload, "", "  "); err == nil {
					payload = buf.Bytes()
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")

	return cmd
}

func (c *CLI) storeDeleteCommand() *cobra.Command {
	var flags storeFlags

	cmd := &cobra.Command{
		Use:   "delete <chart-id>...",
		Short: "Delete published documents and pending events",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			out := newPrinter(cmd.OutOrStdout())
			for _, id := range args {
				for _, key := range []string{runner.Keyer.DocumentKey(id), runner.Keyer.EventKey(id)} {
					if err := runner.Store.Delete(ctx, key); err != nil {
						return err
					}
				}
				out.success("Deleted %s", id)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *CLI) storePathCommand() *cobra.Command {
	var flags storeFlags

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the file store directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if cfg.Backend != store.BackendFile {
				return errors.New(errors.ErrCodeUnsupported, "store path: backend %s has no directory", cfg.Backend)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Dir)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
