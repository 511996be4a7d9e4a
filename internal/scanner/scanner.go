// Package scanner enumerates the PDF documents of one collection and builds
// its title index.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jaywantadh/papermatch/internal/pdftext"
	"github.com/jaywantadh/papermatch/internal/title"
	"github.com/jaywantadh/papermatch/pkg/logging"
)

// Index maps a path relative to the collection root to the title record of
// that document. Built once per collection, read-only afterward. Records
// with an empty Raw title stay in the index but never match.
type Index map[string]title.Record

// ListDocuments enumerates the .pdf files under root (case-insensitive
// extension). Recursive mode descends all subdirectories; otherwise only the
// immediate directory is inspected. Paths are relative to root and sorted
// lexicographically for a deterministic processing order.
func ListDocuments(root string, recursive bool) ([]string, error) {
	var files []string
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isPDF(d.Name()) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", root, err)
		}
		for _, e := range entries {
			if !e.IsDir() && isPDF(e.Name()) {
				files = append(files, e.Name())
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func isPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Scan builds the title index for the collection rooted at root. Unreadable
// or corrupt documents are logged and skipped; they never abort the scan.
func Scan(root string, recursive bool) (Index, error) {
	files, err := ListDocuments(root, recursive)
	if err != nil {
		return nil, err
	}
	idx := make(Index, len(files))
	for _, rel := range files {
		rec, err := extractOne(filepath.Join(root, rel))
		if err != nil {
			logging.Log.WithFields(logrus.Fields{
				"path":  rel,
				"error": err,
			}).Warn("skipping unreadable document")
			continue
		}
		if rec.Raw == "" {
			logging.Log.WithField("path", rel).Debug("no title extracted")
		}
		idx[rel] = rec
	}
	return idx, nil
}

// extractOne opens a single document, extracts its title, and releases the
// handle before returning on every path.
func extractOne(path string) (title.Record, error) {
	doc, err := pdftext.Open(path)
	if err != nil {
		return title.Record{}, err
	}
	defer doc.Close()

	raw, ok := title.Extract(doc)
	if !ok {
		return title.Record{}, nil
	}
	return title.Record{Raw: raw, Normalized: title.Normalize(raw)}, nil
}
