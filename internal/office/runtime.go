// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office implements headless office-suite detection and execution.
// Format conversion between office documents and PDF is delegated entirely
// to an external LibreOffice binary invoked in headless mode.
package office

import (
	"fmt"
	"os/exec"
)

const (
	binSoffice     = "soffice"
	binLibreOffice = "libreoffice"
)

// Runtime provides office-suite operations: checking availability and
// running a headless format conversion.
type Runtime interface {
	// Name returns the office binary name ("soffice" or "libreoffice").
	Name() string

	// Available reports whether the binary exists on PATH and responds
	// to a version query.
	Available() bool

	// Convert runs a headless conversion of inPath into outDir. The tool
	// names its output after the input basename; callers relocate it.
	// target is a LibreOffice convert-to spec (e.g. "pdf" or
	// "docx:MS Word 2007 XML"); infilter optionally forces an import
	// filter and may be empty.
	Convert(inPath, outDir, target, infilter string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunOutput(name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

// runtime implements Runtime for a specific office binary. soffice and
// libreoffice share the same CLI surface; they differ only in binary name.
type runtime struct {
	bin  string
	exec executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "--version") == nil
}

func (r *runtime) Convert(inPath, outDir, target, infilter string) error {
	args := []string{"--headless"}
	if infilter != "" {
		args = append(args, "--infilter="+infilter)
	}
	args = append(args, "--convert-to", target, "--outdir", outDir, inPath)

	out, err := r.exec.RunOutput(r.bin, args...)
	if err != nil {
		return fmt.Errorf("running %s conversion: %w (output: %s)", r.bin, err, out)
	}
	return nil
}

func newRuntime(bin string, exec executor) *runtime {
	return &runtime{bin: bin, exec: exec}
}

var defaultExec = &osExecutor{}

// DetectRuntime tries soffice first, falls back to libreoffice. Returns an
// error if neither binary is available. A non-empty forced binary name
// bypasses detection but is still checked for availability.
func DetectRuntime(forced string) (Runtime, error) {
	return detectRuntime(forced, defaultExec)
}

func detectRuntime(forced string, exec executor) (Runtime, error) {
	if forced != "" {
		rt := newRuntime(forced, exec)
		if !rt.Available() {
			return nil, fmt.Errorf("configured office binary %s not found or not operational", forced)
		}
		return rt, nil
	}

	soffice := newRuntime(binSoffice, exec)
	if soffice.Available() {
		return soffice, nil
	}

	libre := newRuntime(binLibreOffice, exec)
	if libre.Available() {
		return libre, nil
	}

	return nil, fmt.Errorf(
		"no office suite available: neither %s nor %s found or operational",
		binSoffice, binLibreOffice,
	)
}
