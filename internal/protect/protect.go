// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package protect applies and removes PDF password protection, and repairs
// structurally damaged documents. Encryption, decryption, and
// re-serialization are delegated to pdfcpu.
package protect

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/AnjaneyaKaushik/docsmart-backend/internal/fileutil"
)

const aesKeyLength = 256

// Encrypt re-saves the PDF at inPath to outPath with AES-256 encryption,
// using password for both the user and owner roles.
func Encrypt(inPath, outPath, password string, w io.Writer) error {
	if err := validate(inPath, outPath, password); err != nil {
		return err
	}

	conf := model.NewAESConfiguration(password, password, aesKeyLength)
	if err := api.EncryptFile(inPath, outPath, conf); err != nil {
		fileutil.RemoveIfExists(outPath)
		return fmt.Errorf("protecting PDF: %w", err)
	}

	fmt.Fprintf(w, "PDF protected successfully: %s\n", outPath)
	return nil
}

// Decrypt opens the protected PDF at inPath with password and re-saves it
// to outPath without encryption.
func Decrypt(inPath, outPath, password string, w io.Writer) error {
	if err := validate(inPath, outPath, password); err != nil {
		return err
	}

	conf := model.NewAESConfiguration(password, password, aesKeyLength)
	if err := api.DecryptFile(inPath, outPath, conf); err != nil {
		fileutil.RemoveIfExists(outPath)
		return fmt.Errorf("unlocking PDF: %w", err)
	}

	fmt.Fprintf(w, "PDF unlocked successfully: %s\n", outPath)
	return nil
}

// Repair re-serializes the PDF at inPath to outPath. Rewriting the
// document through the optimizer resolves many structural corruptions such
// as broken cross-reference tables.
func Repair(inPath, outPath string, w io.Writer) error {
	if err := fileutil.CheckInput(inPath); err != nil {
		return err
	}
	if err := fileutil.EnsureOutputDir(outPath); err != nil {
		return err
	}

	if err := api.OptimizeFile(inPath, outPath, nil); err != nil {
		fileutil.RemoveIfExists(outPath)
		return fmt.Errorf("repairing PDF: %w", err)
	}

	fmt.Fprintf(w, "PDF successfully repaired and saved to: %s\n", outPath)
	return nil
}

func validate(inPath, outPath, password string) error {
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	if err := fileutil.CheckInput(inPath); err != nil {
		return err
	}
	return fileutil.EnsureOutputDir(outPath)
}
