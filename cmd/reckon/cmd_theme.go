package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JackWReid/reckon/internal/store"
)

func newThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the stored colour theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := opts.openPrefs()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), prefs.LoadTheme())
				return nil
			}
			t, err := store.ParseTheme(args[0])
			if err != nil {
				return err
			}
			if err := prefs.SaveTheme(t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
