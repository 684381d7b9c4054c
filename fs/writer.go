// Package fs provides file-based output with atomic update semantics.
package fs

import (
	"os"
	"path/filepath"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/google/uuid"
)

// WriteFileAtomic writes data to path via a uniquely named temporary file in
// the same directory, renamed over the destination on success. A reader
// never observes a partially written file, and a crash mid-write leaves the
// previous output (or no output) intact. The unique temp suffix keeps
// concurrent writers from clobbering each other's in-flight files.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return navigator.Errorf(navigator.EUNAVAILABLE, "cannot create output directory %q: %v", dir, err)
	}

	tmp := path + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return navigator.Errorf(navigator.EUNAVAILABLE, "cannot write %q: %v", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return navigator.Errorf(navigator.EUNAVAILABLE, "cannot replace %q: %v", path, err)
	}
	return nil
}

// WriteDocument serializes a document and writes it atomically.
func WriteDocument(path string, doc *navigator.Document) error {
	return WriteFileAtomic(path, []byte(doc.XML()))
}

// ListOutlineFiles returns the .opml files directly under dir, sorted by
// name. A missing directory is not an error; it lists as empty.
func ListOutlineFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".opml" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
