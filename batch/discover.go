package batch

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions accepted as candidate images, lowercase with leading dot
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}

// Candidate is an input file selected for processing
type Candidate struct {
	Name string
	Path string
}

// IsCandidate reports whether name ends in one of Extensions, ignoring case
func IsCandidate(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// List returns the candidate images directly inside dir, in the order the
// filesystem enumerates them. Subdirectories are neither listed nor walked.
func List(dir string) ([]Candidate, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &DirError{Op: "open", Path: dir, Err: err}
	}
	defer f.Close()

	// (*os.File).ReadDir keeps directory order, os.ReadDir would sort it
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &DirError{Op: "readdir", Path: dir, Err: err}
	}

	var out []Candidate
	for _, e := range entries {
		if e.IsDir() || !IsCandidate(e.Name()) {
			continue
		}
		out = append(out, Candidate{Name: e.Name(), Path: filepath.Join(dir, e.Name())})
	}
	return out, nil
}
