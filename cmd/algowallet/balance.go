package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/algo-wallet/internal/keystore"
)

var balanceFile string

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the balance of an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		var address string
		switch {
		case len(args) == 1:
			address = args[0]
		case balanceFile != "":
			address, err = keystore.ReadAddress(balanceFile)
			if err != nil {
				return fmt.Errorf("failed to read address from wallet file: %w", err)
			}
		default:
			return errors.New("provide an address or a wallet file with --file")
		}

		resp, err := svc.Balance(cmd.Context(), address)
		if err != nil {
			return err
		}

		fmt.Println("Address:  ", resp.Address)
		fmt.Println("Balance:  ", resp.BalanceAlgo, "ALGO")
		fmt.Println("Reserved: ", resp.MinBalanceAlgo, "ALGO")
		fmt.Println("Available:", resp.AvailableAlgo, "ALGO")
		fmt.Println("Status:   ", resp.Status)
		fmt.Println("Round:    ", resp.Round)
		if resp.BalanceValueInUSD != "" {
			fmt.Println("In USD:   ", resp.BalanceValueInUSD, "(at", resp.USDRate, "USD/ALGO)")
		}

		return nil
	},
}

func init() {
	balanceCmd.Flags().StringVarP(&balanceFile, "file", "f", "", "wallet file to read the address from")
}
