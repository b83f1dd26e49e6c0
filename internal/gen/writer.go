package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory as a group.
// Every file is first written to a temp file next to its target; targets
// are only replaced once all temp files are complete. On failure the temp
// files are removed and existing artifacts are left untouched.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	temps := make([]string, 0, len(files))

	cleanup := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}

	for _, file := range files {
		tmp, err := writeTemp(outputDir, file)
		if err != nil {
			cleanup()

			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		temps = append(temps, tmp)
	}

	for i, file := range files {
		err := os.Rename(temps[i], filepath.Join(outputDir, file.Filename))
		if err != nil {
			temps = temps[i:]
			cleanup()

			return fmt.Errorf("replacing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// writeTemp writes file into a fresh temp file in dir and returns its path.
func writeTemp(dir string, file GeneratedFile) (string, error) {
	if file.Filename == "" || filepath.Base(file.Filename) != file.Filename {
		return "", fmt.Errorf("invalid file name %q", file.Filename)
	}

	f, err := os.CreateTemp(dir, "."+file.Filename+".tmp-*")
	if err != nil {
		return "", err
	}

	_, err = f.Write(file.Content)
	if err == nil {
		err = f.Chmod(filePerm)
	}

	err = errors.Join(err, f.Close())
	if err != nil {
		_ = os.Remove(f.Name())

		return "", err
	}

	return f.Name(), nil
}
