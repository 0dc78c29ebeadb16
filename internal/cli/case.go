package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lwcharts/pkg/casing"
	"github.com/matzehuels/lwcharts/pkg/errors"
)

// caseOpts holds the case command's flags.
type caseOpts struct {
	to      string
	file    string
	shallow bool
}

// caseCommand creates the case command for converting identifiers and keys.
func (c *CLI) caseCommand() *cobra.Command {
	var opts caseOpts

	cmd := &cobra.Command{
		Use:   "case [identifier...]",
		Short: "Convert identifiers or document keys between snake_case and camelCase",
		Long: `Convert identifiers between snake_case and camelCase, or convert every key of
a JSON or YAML document with --file. Use --file - to read from stdin.

Converted documents are written as indented JSON.`,
		Example: `  lwcharts case price_scale_id
  lwcharts case --to snake priceScaleId lastValueVisible
  lwcharts case --to snake --file document.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCase(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "camel", "target case: camel or snake")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "convert the keys of a JSON or YAML document")
	cmd.Flags().BoolVar(&opts.shallow, "shallow", false, "convert top-level keys only")

	return cmd
}

func runCase(cmd *cobra.Command, args []string, opts caseOpts) error {
	dir, err := parseDirection(opts.to)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if opts.file == "" {
		if len(args) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "case: no identifiers given")
		}
		for _, a := range args {
			if dir == casing.ToSnake {
				fmt.Fprintln(w, casing.CamelToSnake(a))
			} else {
				fmt.Fprintln(w, casing.SnakeToCamel(a))
			}
		}
		return nil
	}

	var r io.Reader = cmd.InOrStdin()
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return errors.Wrap(errors.ErrCodeNotFound, err, "case: open %s", opts.file)
		}
		defer f.Close()
		r = f
	}

	// YAML is a superset of JSON, so one decoder reads both.
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "case: decode %s", opts.file)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(casing.ConvertKeys(doc, dir, !opts.shallow))
}

func parseDirection(s string) (casing.Direction, error) {
	switch s {
	case "camel", "":
		return casing.ToCamel, nil
	case "snake":
		return casing.ToSnake, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "case: unknown target %q (want camel or snake)", s)
}
