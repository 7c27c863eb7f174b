package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/algo-wallet/internal/keystore"
)

var rekeyFile string

var rekeyCmd = &cobra.Command{
	Use:   "rekey",
	Short: "Change the passphrase of a wallet file",
	Long:  "Decrypt a wallet file with its current passphrase and re-encrypt it under a new one, with a fresh salt and nonce.",
	RunE: func(cmd *cobra.Command, args []string) error {
		oldPassphrase, err := promptPassphrase("Enter current passphrase: ")
		if err != nil {
			return err
		}
		defer clear(oldPassphrase)

		envelope, data, err := keystore.Load(rekeyFile, oldPassphrase)
		if err != nil {
			return fmt.Errorf("failed to open wallet file: %w", err)
		}
		defer clear(data.Mnemonic)

		newPassphrase, err := promptNewPassphrase()
		if err != nil {
			return err
		}
		defer clear(newPassphrase)

		// Write next to the original, then swap. Save refuses to overwrite,
		// and a failed write must not destroy the only copy of the wallet.
		tmpPath := strings.TrimSuffix(rekeyFile, keystore.FileExtension) + ".rekey" + keystore.FileExtension
		err = keystore.Save(tmpPath, envelope.Network, envelope.Address, envelope.QR, data, newPassphrase)
		if err != nil {
			return fmt.Errorf("failed to write re-encrypted wallet: %w", err)
		}

		err = os.Rename(tmpPath, rekeyFile)
		if err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to replace wallet file: %w", err)
		}

		fmt.Println("Passphrase changed for", rekeyFile)

		return nil
	},
}

func init() {
	rekeyCmd.Flags().StringVarP(&rekeyFile, "file", "f", "", "wallet file to re-encrypt")
	_ = rekeyCmd.MarkFlagRequired("file")
}
