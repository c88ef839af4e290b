package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const tempFilePrefix = ".notebot-tmp-"

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename, so readers see either the old or the new content.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}

	return nil
}

// createUnique exclusively creates dir/base+ext, adding _2, _3... to base
// when the name is taken.
func createUnique(dir, base, ext string) (*os.File, error) {
	name := base + ext
	for i := 2; ; i++ {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, nil
		}
		if !os.IsExist(err) || i > 1000 {
			return nil, err
		}
		name = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
}
