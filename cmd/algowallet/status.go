package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status TXID",
	Short: "Show the status of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		record, err := svc.Status(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println("Transaction:", record.ID)
		fmt.Println("Type:       ", record.Type)
		if record.Round != nil {
			fmt.Println("Status:     confirmed in round", *record.Round)
		} else {
			fmt.Println("Status:     pending")
		}
		fmt.Println("Sender:     ", record.Sender)
		if record.Receiver != "" {
			fmt.Println("Receiver:   ", record.Receiver)
		}
		fmt.Println("Amount:     ", record.AmountAlgo, "ALGO")
		fmt.Println("Fee:        ", record.FeeAlgo, "ALGO")
		if record.Note != "" {
			fmt.Println("Note:       ", record.Note)
		}

		return nil
	},
}
