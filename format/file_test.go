package format_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oriumgames/schembuild/format"
	"github.com/oriumgames/schembuild/voxel"
)

func TestWriteFileAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.schem")

	src := buildSample()
	if err := format.WriteFile(path, src, format.JE1_19_2); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	dst, v, err := format.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if v != format.JE1_19_2 {
		t.Errorf("version = %v, want JE 1.19.2", v)
	}
	if got, want := dst.Len(), src.Len(); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.schem")

	// Encoding an empty structure fails before any bytes reach disk.
	err := format.WriteFile(path, voxel.NewStructure(), format.JE1_19_2)
	if !errors.Is(err, format.ErrEncoding) {
		t.Fatalf("err = %v, want ErrEncoding", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("directory not clean after failed write: %v", entries)
	}
}

func TestWriteFileDoesNotClobberOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.schem")

	if err := format.WriteFile(path, buildSample(), format.JE1_19_2); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if err := format.WriteFile(path, voxel.NewStructure(), format.JE1_19_2); err == nil {
		t.Fatal("expected failure writing empty structure")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("previous file gone after failed write: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("failed write corrupted the existing file")
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "x.schem")
	if err := format.WriteFile(path, buildSample(), format.JE1_19_2); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
