package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/peck"
	"github.com/dhamidi/peck/token"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var includeWhitespace bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a file with the byte-token catalogue and dump the tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			c := peck.NewCursor(data)
			for !c.IsEmpty() {
				at := c.Position()
				r := peck.NewRecognizer(c)
				for _, k := range token.All {
					r.TryOr(k)
				}
				m, ok, err := r.Finish()
				if err != nil {
					return fmt.Errorf("scan at offset %d: %w", at, err)
				}
				if !ok {
					// not in the catalogue; report the raw byte
					b := c.Remaining()[0]
					if err := c.Bump(1); err != nil {
						return err
					}
					fmt.Printf("%6d  Byte(0x%02x)\n", at, b)
					continue
				}
				kind := m.(token.Kind)
				if kind.IsWhitespace() && !includeWhitespace {
					continue
				}
				fmt.Printf("%6d  %s\n", at, kind)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeWhitespace, "whitespace", false, "include whitespace tokens in the output")

	return cmd
}
