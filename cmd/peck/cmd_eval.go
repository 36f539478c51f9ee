package main

import (
	"fmt"

	"github.com/dhamidi/peck/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Parse and evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := calc.Parse([]byte(args[0]))
			if err != nil {
				return fmt.Errorf("parse expression: %w", err)
			}

			switch outputFormat {
			case "value":
				value, err := calc.Eval(expr)
				if err != nil {
					return fmt.Errorf("evaluate: %w", err)
				}
				fmt.Println(value)
			case "tree":
				fmt.Println(expr)
			case "json":
				encoded, err := calc.MarshalExpr(expr)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println(string(encoded))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "value", "output format (value, tree, json)")

	return cmd
}
