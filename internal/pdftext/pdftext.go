// Package pdftext extracts line-oriented plain text from PDF pages. It is
// the only package that touches the PDF format; everything above it works on
// strings.
package pdftext

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"rsc.io/pdf"
)

// lineBreakTolerance is the vertical distance in PDF points below which two
// text fragments are treated as part of the same line.
const lineBreakTolerance = 2.0

// Document is one open PDF. Close must be called once the text has been
// read; the underlying file handle is not shared.
type Document struct {
	f *os.File
	r *pdf.Reader
}

// Open parses the PDF at path. The file handle is released on every failure
// path; on success the caller owns it via Close.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}
	r, err := newReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Document{f: f, r: r}, nil
}

// newReader wraps pdf.NewReader, converting the library's parse panics on
// malformed input into errors.
func newReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = nil
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()
	r, err = pdf.NewReader(f, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pdf: %w", err)
	}
	return r, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}

// NumPages returns the page count of the document.
func (d *Document) NumPages() int {
	return d.r.NumPage()
}

// PageText returns the plain text of the zero-based page index, with lines
// separated by newlines. Pages with no text content yield an empty string.
// Parse panics from malformed page streams surface as errors.
func (d *Document) PageText(index int) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = fmt.Errorf("malformed page %d: %v", index, p)
		}
	}()
	if index < 0 || index >= d.r.NumPage() {
		return "", fmt.Errorf("page index %d out of range (document has %d pages)", index, d.r.NumPage())
	}
	page := d.r.Page(index + 1)
	if page.V.IsNull() {
		return "", nil
	}
	return assembleLines(page.Content().Text), nil
}

// assembleLines turns positioned text fragments into newline-separated
// lines. PDF content streams carry no line structure, so fragments are
// ordered top-to-bottom then left-to-right and a line break is inserted
// wherever the baseline drops by more than lineBreakTolerance.
func assembleLines(frags []pdf.Text) string {
	if len(frags) == 0 {
		return ""
	}
	sorted := make([]pdf.Text, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	lastY := sorted[0].Y
	for i, t := range sorted {
		if i > 0 {
			if lastY-t.Y > lineBreakTolerance {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(t.S)
		lastY = t.Y
	}
	return b.String()
}
