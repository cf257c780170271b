package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes the generated files into dir, replacing previous output.
// A file whose content is unchanged is not touched, so its modification time
// survives repeated go generate runs.
func WriteFiles(files []GeneratedFile, dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(dir, file.Filename)

		if prev, err := os.ReadFile(path); err == nil && bytes.Equal(prev, file.Content) {
			continue
		}

		if err := writeAtomic(path, file.Content); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// writeAtomic writes content next to path and renames it into place.
func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	name := tmp.Name()
	defer os.Remove(name)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(name, filePerm); err != nil {
		return err
	}

	return os.Rename(name, path)
}
