package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ResolveFiles turns the input path into the list of image files to
// process. A single regular file yields itself regardless of extension; a
// directory is walked recursively and filtered through the extension
// allow-list. The result is in lexicographic order so runs are
// deterministic.
func ResolveFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	if info.Mode().IsRegular() {
		return []string{path}, nil
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() && RecognizedExt(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	sort.Strings(files)
	return files, nil
}
