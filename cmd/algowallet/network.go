package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the status of the connected network",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		resp, err := svc.NetworkStatus(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Status:", resp.Status)
		if resp.Network != "" {
			fmt.Println("Network:", resp.Network)
		}
		fmt.Println("Round:", resp.CurrentRound)

		return nil
	},
}
