// Package extract turns uploaded PDF bytes into plain per-page text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	dErrors "attest/pkg/domain-errors"
)

// Page is the extracted text of one document page.
type Page struct {
	Number int    `json:"page_number"`
	Text   string `json:"text"`
}

// Document is the extracted form of one uploaded file.
type Document struct {
	Title string `json:"document_title"`
	Pages []Page `json:"pages"`
}

// Text flattens the document into a single string in page order.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		if t := strings.TrimSpace(p.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Extractor reads raw bytes into a Document. Implementations fail with an
// extraction-coded error when the input is not a readable document.
type Extractor interface {
	Extract(data []byte, title string) (*Document, error)
}

// PDF extracts text with the ledongthuc/pdf reader.
type PDF struct{}

// NewPDF returns the production PDF extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// Extract parses the PDF and returns per-page plain text. Pages whose text
// cannot be decoded are skipped; a file with no readable pages at all is an
// extraction error, same as an unparseable file.
func (e *PDF) Extract(data []byte, title string) (doc *Document, err error) {
	// The pdf package panics on some malformed inputs; fold those into the
	// same extraction error as a failed parse.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = dErrors.Wrap(fmt.Errorf("%v", r), dErrors.CodeExtraction, "document is not a valid PDF")
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeExtraction, "document is not a valid PDF")
	}

	doc = &Document{Title: title}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		doc.Pages = append(doc.Pages, Page{Number: i, Text: text})
	}

	if len(doc.Pages) == 0 {
		return nil, dErrors.New(dErrors.CodeExtraction, "document contains no readable text")
	}
	return doc, nil
}
