package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tomasbasham/formfield"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formfield",
		Short: "Address form data by HTML field name",
		Long: `formfield compiles HTML form field names such as "user[emails][]" and
extracts the values submitted under them from query strings or YAML/JSON
documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCompileCmd(), newExtractCmd())
	return rootCmd
}

type compiled struct {
	Name     string   `yaml:"name"`
	Segments []string `yaml:"segments"`
	RepeatAt *int     `yaml:"repeat_at,omitempty"`
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile NAME...",
		Short: "Print the selector of each field name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]compiled, 0, len(args))
			for _, name := range args {
				s, err := formfield.Compile(name)
				if err != nil {
					return err
				}
				c := compiled{Name: name, Segments: s.Segments()}
				if at, ok := s.RepeatAt(); ok {
					c.RepeatAt = &at
				}
				out = append(out, c)
			}
			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
}

type extractOptions struct {
	query string
	input string
	files bool
}

func newExtractCmd() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract NAME",
		Short: "Print the values submitted under a field name",
		Long: `Extract reads form data from --query, from a YAML or JSON document given
with --input, or otherwise from a form-urlencoded body on standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Form-urlencoded query string")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "YAML or JSON input file")
	cmd.Flags().BoolVar(&opts.files, "files", false, "Print file upload records instead of values")
	cmd.MarkFlagsMutuallyExclusive("query", "input")

	return cmd
}

func runExtract(cmd *cobra.Command, name string, opts extractOptions) error {
	field, err := formfield.NewField(name)
	if err != nil {
		return err
	}

	input, err := readInput(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}

	if opts.files {
		files := field.Files(input)
		if files == nil {
			files = []formfield.FileRecord{}
		}
		return writeYAML(cmd.OutOrStdout(), files)
	}

	values := field.Values(input)
	if values == nil {
		values = []string{}
	}
	return writeYAML(cmd.OutOrStdout(), values)
}

func readInput(stdin io.Reader, opts extractOptions) (*formfield.Map, error) {
	switch {
	case opts.query != "":
		return formfield.ParseQuery(strings.TrimPrefix(opts.query, "?")), nil
	case opts.input != "":
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return formfield.DecodeYAML(f)
	default:
		return formfield.NewDecoder(stdin).Decode()
	}
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return enc.Close()
}
