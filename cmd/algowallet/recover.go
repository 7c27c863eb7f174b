package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/algo-wallet/internal/keystore"
	"github.com/AlexZinkM/algo-wallet/internal/model"
)

var recoverOut string

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover an account from its recovery phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		typed, err := promptPhrase()
		if err != nil {
			return err
		}
		phrase := strings.Join(strings.Fields(typed), " ")

		recovered, err := svc.RecoverAccount(phrase)
		if err != nil {
			return err
		}

		if recoverOut != "" {
			passphrase, err := promptNewPassphrase()
			if err != nil {
				return err
			}
			defer clear(passphrase)

			data := model.WalletData{
				Mnemonic:  []byte(phrase),
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			}
			defer clear(data.Mnemonic)

			err = keystore.Save(recoverOut, "algorand", recovered.Address, "", &data, passphrase)
			if err != nil {
				return fmt.Errorf("failed to save wallet file: %w", err)
			}
			fmt.Println("Wallet file written to", recoverOut)
		}

		fmt.Println("Address:", recovered.Address)

		return nil
	},
}

func init() {
	recoverCmd.Flags().StringVarP(&recoverOut, "out", "o", "", "write an encrypted wallet file ("+keystore.FileExtension+")")
}
