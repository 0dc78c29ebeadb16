package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lwcharts/pkg/definition"
	"github.com/matzehuels/lwcharts/pkg/pipeline"
)

// buildOpts holds the build command's flags.
type buildOpts struct {
	output  string
	format  string
	publish bool
	refresh bool
	indent  bool
	noSync  bool
	store   storeFlags
}

// buildCommand creates the build command for assembling and publishing documents.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <definition>",
		Short: "Assemble a chart definition into a wire document",
		Long: `Assemble a TOML or YAML chart definition into the JSON document read by the
rendering surface.

Without --output or --publish the document is written to stdout.`,
		Example: `  # Print the document
  lwcharts build charts.toml

  # Write an indented document to a file
  lwcharts build charts.yaml -o charts.json --indent

  # Publish to the configured store
  LWCHARTS_STORE=redis lwcharts build charts.toml --publish`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the document to a file")
	cmd.Flags().StringVar(&opts.format, "format", "", "definition format: toml or yaml (default from the file extension)")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "publish the document to the store")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "publish even when the store holds identical content")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "indent the JSON output")
	cmd.Flags().BoolVar(&opts.noSync, "no-sync", false, "drop the definition's sync section")
	opts.store.register(cmd)

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, source string, opts buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := newPrinter(cmd.OutOrStdout())
	if opts.refresh && !opts.publish {
		newPrinter(cmd.ErrOrStderr()).warning("--refresh has no effect without --publish")
	}

	popts := pipeline.Options{
		Source:  source,
		Format:  definition.Format(opts.format),
		NoSync:  opts.noSync,
		Publish: opts.publish,
		Refresh: opts.refresh,
		TTL:     opts.store.ttl,
		Indent:  opts.indent,
		Logger:  logger,
	}

	var file *os.File
	switch {
	case opts.output != "":
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		file = f
		defer file.Close()
		popts.Output = f
	case !opts.publish:
		popts.Output = cmd.OutOrStdout()
	}

	var runner *pipeline.Runner
	if opts.publish {
		r, err := c.newRunner(ctx, opts.store)
		if err != nil {
			return err
		}
		runner = r
	} else {
		runner = pipeline.NewRunner(nil, newKeyer(), logger)
	}
	defer runner.Close()

	prog := newProgress(logger)
	var spinner *Spinner
	if opts.publish {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), "Publishing "+source+"...")
		spinner.Start()
	}

	result, err := runner.Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %d charts", result.Stats.ChartCount), "source", source)

	// Stdout carries the document itself; keep it clean.
	if opts.output == "" && !opts.publish {
		return nil
	}

	status := iconLocal
	switch {
	case result.PublishInfo.Unchanged:
		status = iconUnchanged
	case result.PublishInfo.Published:
		status = iconPublished
	}
	out.success("Built %s", source)
	out.stats(result.Stats.ChartCount, result.Stats.SeriesCount, result.Stats.Bytes, status)
	if opts.output != "" {
		out.file(opts.output)
	}
	if opts.publish {
		for _, ch := range result.Charts {
			out.detail("%s %s", iconArrow, runner.Keyer.DocumentKey(ch.ID))
		}
		if result.Response != nil {
			out.info("surface replied %s for %s", result.Response.Type, result.Response.ChartID)
		}
		if len(result.Charts) > 0 {
			out.nextStep("Inspect", "lwcharts store get "+result.Charts[0].ID)
		}
	}
	return nil
}
