package gnuplot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// -------------------------------------------------------------------------
// Path Set

// pathSet is a set of cleaned file names.
type pathSet map[string]struct{}

// Add adds the cleaned path p to s.
func (s pathSet) Add(p string) {
	s[filepath.Clean(p)] = struct{}{}
}

// Del removes p from s.
func (s pathSet) Del(p string) {
	delete(s, filepath.Clean(p))
}

// Contains reports membership of p in s.
func (s pathSet) Contains(p string) bool {
	_, ok := s[filepath.Clean(p)]
	return ok
}

// Elements returns the sorted paths of s.
func (s pathSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for p := range s {
		elems = append(elems, p)
	}
	sort.Strings(elems)
	return elems
}

// RemoveAll deletes every file in s from disk and empties s. Files which
// are already gone are not an error.
func (s pathSet) RemoveAll() error {
	var err error
	for _, p := range s.Elements() {
		if e := os.Remove(p); e != nil && !errors.Is(e, fs.ErrNotExist) {
			err = multierror.Append(err, fmt.Errorf("gnuplot: removing temporary file: %w", e))
		}
		delete(s, p)
	}
	return err
}
