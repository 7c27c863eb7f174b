package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/algo-wallet/algorand"
)

var (
	historyLimit uint64
	historyType  string
)

var historyCmd = &cobra.Command{
	Use:   "history ADDRESS",
	Short: "List recent transactions of an account, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		resp, err := svc.History(cmd.Context(), args[0], historyLimit, historyType)
		if err != nil {
			return err
		}

		if resp.Count == 0 {
			fmt.Println("No transactions found for", resp.Address)
			return nil
		}

		for _, txn := range resp.Transactions {
			round := "pending"
			if txn.Round != nil {
				round = strconv.FormatUint(*txn.Round, 10)
			}
			direction := "in "
			if txn.Sender == resp.Address {
				direction = "out"
			}
			fmt.Printf("%-10s %-5s %s %14s ALGO  %s\n", round, txn.Type, direction, txn.AmountAlgo, txn.ID)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().Uint64VarP(&historyLimit, "limit", "l", algorand.DefaultHistoryLimit, "maximum number of transactions to list")
	historyCmd.Flags().StringVarP(&historyType, "type", "t", "", "filter by transaction type (pay, axfer, appl)")
}
