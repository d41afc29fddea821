// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/protect"
	"github.com/AnjaneyaKaushik/docsmart-backend/internal/secrets"
)

var protectCmd = &cobra.Command{
	Use:   "protect <input.pdf> <output.pdf> [password]",
	Short: "Password-protect a PDF with AES-256 encryption",
	Long: `Protect re-saves the document encrypted with AES-256, using the same
password for the user and owner roles. The password may be given as the
third argument or placed in .secrets/pdf-password.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runProtect,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock <input.pdf> <output.pdf> [password]",
	Short: "Remove password protection from a PDF",
	Long: `Unlock opens the protected document with the supplied password and
re-saves it without encryption. The password may be given as the third
argument or placed in .secrets/pdf-password.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runUnlock,
}

func init() {
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(unlockCmd)
}

// passwordArg resolves the password from the optional third argument or
// the loaded secrets.
func passwordArg(args []string) (string, error) {
	var given string
	if len(args) == 3 {
		given = args[2]
	}
	pw := secretDefault(secrets.KeyPDFPassword, given)
	if pw == "" {
		return "", fmt.Errorf("password required: pass it as the third argument or create .secrets/%s", secrets.KeyPDFPassword)
	}
	return pw, nil
}

func runProtect(cmd *cobra.Command, args []string) error {
	pw, err := passwordArg(args)
	if err != nil {
		return err
	}

	return runRecorded(cmd, "protect", args[0], args[1], func() error {
		return protect.Encrypt(args[0], args[1], pw, os.Stdout)
	})
}

func runUnlock(cmd *cobra.Command, args []string) error {
	pw, err := passwordArg(args)
	if err != nil {
		return err
	}

	return runRecorded(cmd, "unlock", args[0], args[1], func() error {
		return protect.Decrypt(args[0], args[1], pw, os.Stdout)
	})
}
