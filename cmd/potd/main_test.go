package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmit_WritesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "potd.txt")
	output = path
	defer func() { output = "" }()

	if err := emit("Ynp4nSVi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "Ynp4nSVi\n" {
		t.Errorf("want %q, got %q", "Ynp4nSVi\n", string(data))
	}
}

func TestEmit_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "potd.txt")
	if err := os.WriteFile(path, []byte("original\n"), 0o644); err != nil {
		t.Fatalf("preparing existing file: %v", err)
	}
	output = path
	defer func() { output = "" }()

	if err := emit("Ynp4nSVi"); err == nil {
		t.Fatal("want error for existing output file, got nil")
	}

	// 既存の内容が破壊されていないこと
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "original\n" {
		t.Errorf("existing file was modified: %q", string(data))
	}
}
