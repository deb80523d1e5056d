package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate an expression and print the result",
		Long: `Evaluate an expression with the same rules as the interactive
calculator. Arguments are joined with spaces. Unclosed parentheses are
closed automatically and the result is recorded in history.

Examples:
  reckon eval 2+2
  reckon eval "5! / comb(5,2)"
  reckon eval --degrees "sin(30"
  reckon eval -- -2^2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := opts.openPrefs()
			if err != nil {
				return err
			}
			res, err := opts.newEditor(prefs).EvaluateText(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Formatted)
			return nil
		},
	}
}
