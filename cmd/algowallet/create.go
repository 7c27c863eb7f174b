package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/algo-wallet/internal/keystore"
	"github.com/AlexZinkM/algo-wallet/internal/model"
)

var createOut string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Long:  "Generate a new account and print its address and 25-word recovery phrase. With --out the phrase is also written to an encrypted wallet file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		created, err := svc.CreateAccount()
		if err != nil {
			return err
		}

		if createOut != "" {
			passphrase, err := promptNewPassphrase()
			if err != nil {
				return err
			}
			defer clear(passphrase)

			data := model.WalletData{
				Mnemonic:  []byte(created.Mnemonic),
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			}
			defer clear(data.Mnemonic)

			err = keystore.Save(createOut, "algorand", created.Address, created.QR, &data, passphrase)
			if err != nil {
				return fmt.Errorf("failed to save wallet file: %w", err)
			}
			fmt.Println("Wallet file written to", createOut)
		}

		fmt.Println("Address:", created.Address)
		fmt.Println()
		fmt.Println("Recovery phrase (shown once, write it down and keep it offline):")
		fmt.Println(created.Mnemonic)

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createOut, "out", "o", "", "write an encrypted wallet file ("+keystore.FileExtension+")")
}
