// ndx: query tool for the ndindex engine.
//
// Evaluates index expressions against shapes without any array data:
//
//	ndx shape "1, :, ..." 3,4,5,6       output shape of a[1, :, ...]
//	ndx reduce "::-1" 10                minimal bounds-resolved index
//	ndx expand "..., 0" 2,3,4           maximally explicit tuple
//	ndx shape --file cases.yaml         batch mode
//	ndx repl                            interactive shell
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ruancomelli/ndindex"
)

const appName = "ndx"

func main() {
	root := &cobra.Command{
		Use:           appName,
		Short:         "reason about array indexing expressions without arrays",
		Version:       ndindex.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(shapeCmd(), reduceCmd(), expandCmd(), replCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// batchCase is one entry of a --file YAML batch: an index expression and the
// shape to evaluate it against.
type batchCase struct {
	Index string `yaml:"index"`
	Shape []int  `yaml:"shape"`
}

func shapeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "shape [index] [shape]",
		Short: "compute the output shape of indexing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return runBatch(cmd, file, func(idx ndindex.Index, shape []int) (string, error) {
					out, err := idx.NewShape(shape)
					if err != nil {
						return "", err
					}
					return formatShape(out), nil
				})
			}
			idx, shape, err := parseQueryArgs(args)
			if err != nil {
				return err
			}
			out, err := idx.NewShape(shape)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatShape(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of {index, shape} cases")
	return cmd
}

func reduceCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "reduce [index] [shape]",
		Short: "resolve an index against a shape to its minimal equivalent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return runBatch(cmd, file, func(idx ndindex.Index, shape []int) (string, error) {
					out, err := idx.Reduce(shape)
					if err != nil {
						return "", err
					}
					return out.String(), nil
				})
			}
			idx, shape, err := parseQueryArgs(args)
			if err != nil {
				return err
			}
			out, err := idx.Reduce(shape)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of {index, shape} cases")
	return cmd
}

func expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [index] [shape]",
		Short: "expand an index to its maximally explicit tuple",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, shape, err := parseQueryArgs(args)
			if err != nil {
				return err
			}
			out, err := idx.Expand(shape)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
}

func runBatch(cmd *cobra.Command, file string, eval func(ndindex.Index, []int) (string, error)) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var cases []batchCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	for _, c := range cases {
		idx, err := ndindex.ParseText(c.Index)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "a[%s] on %s -> error: %v\n", c.Index, formatShape(c.Shape), err)
			continue
		}
		out, err := eval(idx, c.Shape)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "a[%s] on %s -> error: %v\n", c.Index, formatShape(c.Shape), err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "a[%s] on %s -> %s\n", c.Index, formatShape(c.Shape), out)
	}
	return nil
}

func parseQueryArgs(args []string) (ndindex.Index, []int, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("expected <index> <shape> arguments")
	}
	idx, err := ndindex.ParseText(args[0])
	if err != nil {
		return nil, nil, err
	}
	shape, err := parseShapeArg(args[1])
	if err != nil {
		return nil, nil, err
	}
	return idx, shape, nil
}

// parseShapeArg reads "3,4,5", "(3, 4, 5)", "(2,)" or "()".
func parseShapeArg(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue // allow the trailing comma of "(2,)"
		}
		var d int
		if _, err := fmt.Sscanf(p, "%d", &d); err != nil {
			return nil, fmt.Errorf("invalid shape %q", s)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid shape %q: negative dimension", s)
		}
		shape = append(shape, d)
	}
	return shape, nil
}

func formatShape(shape []int) string {
	if len(shape) == 0 {
		return "()"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
