package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

func Quoted(s string) string {
	return `"` + s + `"`
}

func hasExtension(path string, exts []string) bool {
	return slices.Contains(exts, strings.ToLower(filepath.Ext(path)))
}

func ValidateAudioFile(filePath string, exts []string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory: %s", filePath)
	}

	if !hasExtension(filePath, exts) {
		return fmt.Errorf("file is not one of %s: %s", strings.Join(exts, ", "), filePath)
	}

	return nil
}

// FindAudioFiles walks dir and returns the files whose extension is in exts,
// in lexical order. Subdirectories are only entered when recursive is set.
func FindAudioFiles(dir string, recursive bool, exts []string) ([]string, error) {
	var files []string

	walkFunc := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		if hasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	}

	err := filepath.WalkDir(dir, walkFunc)
	return files, err
}
