package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/algo-wallet/algorand"
	"github.com/AlexZinkM/algo-wallet/internal/common"
	"github.com/AlexZinkM/algo-wallet/internal/keystore"
)

var (
	sendFile   string
	sendTo     string
	sendAmount string
	sendNote   string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a payment and wait for confirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		// 1. Get the sender phrase, preferring the encrypted wallet file
		var phrase string
		if sendFile != "" {
			passphrase, err := promptPassphrase("Enter wallet passphrase: ")
			if err != nil {
				return err
			}
			defer clear(passphrase)

			_, data, err := keystore.Load(sendFile, passphrase)
			if err != nil {
				return fmt.Errorf("failed to open wallet file: %w", err)
			}
			defer clear(data.Mnemonic)
			phrase = string(data.Mnemonic)
		} else {
			typed, err := promptPhrase()
			if err != nil {
				return err
			}
			phrase = strings.Join(strings.Fields(typed), " ")
		}

		// 2. Parse the amount
		amount, err := common.AlgoToMicroAlgos(sendAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", sendAmount, err)
		}

		// 3. Send and wait
		result, err := svc.Send(cmd.Context(), algorand.TransferIntent{
			SenderMnemonic:   phrase,
			Receiver:         sendTo,
			AmountMicroAlgos: amount,
			Note:             []byte(sendNote),
		})
		if err != nil {
			// The transaction may already be on its way even when the wait
			// failed, so surface the id before reporting the error.
			if result != nil && result.TxID != "" {
				fmt.Println("Transaction id:", result.TxID)
			}
			return err
		}

		fmt.Println("Transaction id:", result.TxID)
		fmt.Println("Fee:           ", common.MicroAlgosToAlgo(result.FeeMicroAlgos), "ALGO")
		switch {
		case result.Confirmed:
			fmt.Println("Confirmed in round", result.ConfirmedRound)
		case result.TimedOut:
			fmt.Println("Not confirmed yet. Check later with: algowallet status", result.TxID)
		default:
			fmt.Println("Wait interrupted. Check later with: algowallet status", result.TxID)
		}

		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendFile, "file", "f", "", "wallet file holding the sender account")
	sendCmd.Flags().StringVarP(&sendTo, "to", "t", "", "receiver address")
	sendCmd.Flags().StringVarP(&sendAmount, "amount", "a", "", "amount in ALGO, for example 1.5")
	sendCmd.Flags().StringVarP(&sendNote, "note", "n", "", "optional note to attach")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("amount")
}
