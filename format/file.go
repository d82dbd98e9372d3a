package format

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oriumgames/schembuild/voxel"
)

// WriteFile writes the structure to path atomically: the bytes go to a
// temporary file in the target directory which is renamed into place only
// after a successful write. A failure never leaves a corrupt or truncated
// file at path.
func WriteFile(path string, s *voxel.Structure, v Version) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := Write(tmp, s, v); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// ReadFile reads and decodes a schematic file.
func ReadFile(path string) (*voxel.Structure, Version, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return Read(f)
}
