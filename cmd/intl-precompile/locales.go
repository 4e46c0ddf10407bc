package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales found in src",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			sources, err := discoverDictionaries(cfg.Src)
			if err != nil {
				return err
			}
			for _, locale := range sortedLocales(sources) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", locale, sources[locale]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
