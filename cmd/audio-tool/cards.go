package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCardsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List sound cards and the profile handling each one",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cards, err := a.cards()
			if err != nil {
				return err
			}

			reg, err := a.registry()
			if err != nil {
				return err
			}

			for _, card := range cards {
				fmt.Print(card.String())

				if p, err := reg.ForCard(card); err == nil {
					fmt.Printf("  Profile: %s\n", p.Name())
				} else {
					fmt.Println("  Profile: none")
				}
			}

			return nil
		},
	}
}
