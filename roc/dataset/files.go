package dataset

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File names inside a dataset directory. Each data file may also be stored
// bzip2-compressed with a ".bz2" suffix.
const (
	ParamsFileName       = "parameters.json"
	ObservationsFileName = "all_obs.json"
	EpidemiesFileName    = "all_epidemies.csv"
)

const bz2Suffix = ".bz2"

type readCloser struct {
	io.Reader
	io.Closer
}

// openData opens path for reading, decompressing when it ends in ".bz2".
func openData(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, bz2Suffix) {
		return readCloser{Reader: bzip2.NewReader(f), Closer: f}, nil
	}
	return f, nil
}

// resolve returns the path of name inside dir, preferring the compressed
// variant. It returns fs.ErrNotExist when neither exists.
func resolve(dir, name string) (string, error) {
	for _, candidate := range []string{name + bz2Suffix, name} {
		path := filepath.Join(dir, candidate)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%s in %s: %w", name, dir, fs.ErrNotExist)
}
