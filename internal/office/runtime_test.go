// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"errors"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	runOutputFunc func(name string, args ...string) (string, error)
	gotName       string
	gotArgs       []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunOutput(name string, args ...string) (string, error) {
	m.gotName = name
	m.gotArgs = args
	if m.runOutputFunc != nil {
		return m.runOutputFunc(name, args...)
	}
	return "", nil
}

func TestDetectRuntime(t *testing.T) {
	tests := []struct {
		name     string
		forced   string
		exec     *mockExecutor
		wantName string
		wantErr  string
	}{
		{
			name: "soffice available",
			exec: &mockExecutor{
				availableBins: map[string]bool{"soffice": true},
				runnableCmds:  map[string]bool{"soffice --version": true},
			},
			wantName: "soffice",
		},
		{
			name: "libreoffice fallback when soffice missing",
			exec: &mockExecutor{
				availableBins: map[string]bool{"libreoffice": true},
				runnableCmds:  map[string]bool{"libreoffice --version": true},
			},
			wantName: "libreoffice",
		},
		{
			name: "soffice on PATH but version fails, libreoffice works",
			exec: &mockExecutor{
				availableBins: map[string]bool{"soffice": true, "libreoffice": true},
				runnableCmds:  map[string]bool{"libreoffice --version": true},
			},
			wantName: "libreoffice",
		},
		{
			name: "both available, soffice preferred",
			exec: &mockExecutor{
				availableBins: map[string]bool{"soffice": true, "libreoffice": true},
				runnableCmds:  map[string]bool{"soffice --version": true, "libreoffice --version": true},
			},
			wantName: "soffice",
		},
		{
			name: "neither available",
			exec: &mockExecutor{
				availableBins: map[string]bool{},
				runnableCmds:  map[string]bool{},
			},
			wantErr: "no office suite available",
		},
		{
			name:   "forced binary used when operational",
			forced: "soffice-custom",
			exec: &mockExecutor{
				availableBins: map[string]bool{"soffice-custom": true},
				runnableCmds:  map[string]bool{"soffice-custom --version": true},
			},
			wantName: "soffice-custom",
		},
		{
			name:   "forced binary missing is an error",
			forced: "soffice-custom",
			exec: &mockExecutor{
				availableBins: map[string]bool{"soffice": true},
				runnableCmds:  map[string]bool{"soffice --version": true},
			},
			wantErr: "soffice-custom not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detectRuntime(tt.forced, tt.exec)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %v should contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rt.Name() != tt.wantName {
				t.Errorf("got runtime %q, want %q", rt.Name(), tt.wantName)
			}
		})
	}
}

func TestConvertArgs(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		infilter string
		wantArgs []string
	}{
		{
			name:   "docx to pdf",
			target: "pdf",
			wantArgs: []string{
				"--headless", "--convert-to", "pdf", "--outdir", "/tmp/out", "in.docx",
			},
		},
		{
			name:     "pdf to docx with import filter",
			target:   "docx:MS Word 2007 XML",
			infilter: "writer_pdf_import",
			wantArgs: []string{
				"--headless", "--infilter=writer_pdf_import",
				"--convert-to", "docx:MS Word 2007 XML", "--outdir", "/tmp/out", "in.docx",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{}
			rt := newRuntime("soffice", exec)
			if err := rt.Convert("in.docx", "/tmp/out", tt.target, tt.infilter); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exec.gotName != "soffice" {
				t.Errorf("ran binary %q, want soffice", exec.gotName)
			}
			if got, want := strings.Join(exec.gotArgs, " "), strings.Join(tt.wantArgs, " "); got != want {
				t.Errorf("args = %q, want %q", got, want)
			}
		})
	}
}

func TestConvertFailureIncludesOutput(t *testing.T) {
	exec := &mockExecutor{
		runOutputFunc: func(string, ...string) (string, error) {
			return "Error: source file could not be loaded", errors.New("exit status 1")
		},
	}
	rt := newRuntime("soffice", exec)
	err := rt.Convert("in.docx", "/tmp/out", "pdf", "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "could not be loaded") {
		t.Errorf("error should carry tool output, got: %v", err)
	}
}
