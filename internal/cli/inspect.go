package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lwcharts/pkg/definition"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/pipeline"
)

// inspectCommand creates the inspect command that lists series in render order.
func (c *CLI) inspectCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <definition>",
		Short: "Show each chart's series in render order",
		Long: `Build a chart definition and print one table per chart listing its series
in the order the rendering surface draws them: by pane, then by z-index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0], definition.Format(format))
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "definition format: toml or yaml (default from the file extension)")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, source string, format definition.Format) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := newPrinter(cmd.OutOrStdout())

	runner := pipeline.NewRunner(nil, nil, logger)
	opts := pipeline.Options{Source: source, Format: format, Logger: logger}
	def, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	_, charts, err := runner.Assemble(ctx, def, opts)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	for _, ch := range charts {
		out.line(StyleTitle.Render(ch.ID))
		out.keyValue("group", strconv.Itoa(ch.GroupID))
		out.table([]string{"pane", "z", "type", "scale", "points", "title"}, seriesRows(ch.Series.Flatten()))
		if n := len(ch.Trades); n > 0 {
			out.detail("%d trades", n)
		}
	}
	return nil
}

// seriesRows renders serialized series as table rows.
func seriesRows(series []map[string]any) [][]string {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		opts, _ := optdoc.AsMap(s["options"])
		points := 0
		if d, ok := s["data"].([]any); ok {
			points = len(d)
		}
		title, _ := opts["title"].(string)
		if msg, ok := s["error"].(string); ok {
			title = "error: " + msg
		}
		rows = append(rows, []string{
			fmt.Sprint(s["paneId"]),
			fmt.Sprint(opts["zIndex"]),
			fmt.Sprint(s["type"]),
			fmt.Sprint(opts["priceScaleId"]),
			strconv.Itoa(points),
			title,
		})
	}
	return rows
}
