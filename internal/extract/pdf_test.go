package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "attest/pkg/domain-errors"
)

func TestPDFExtract(t *testing.T) {
	e := NewPDF()

	t.Run("garbage bytes yield an extraction error", func(t *testing.T) {
		doc, err := e.Extract([]byte("this is not a pdf"), "garbage.pdf")
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, dErrors.CodeExtraction, dErrors.CodeOf(err))
	})

	t.Run("empty input yields an extraction error", func(t *testing.T) {
		doc, err := e.Extract(nil, "empty.pdf")
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, dErrors.CodeExtraction, dErrors.CodeOf(err))
	})

	t.Run("truncated header yields an extraction error, not a panic", func(t *testing.T) {
		doc, err := e.Extract([]byte("%PDF-1.7\n1 0 obj"), "truncated.pdf")
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, dErrors.CodeExtraction, dErrors.CodeOf(err))
	})
}

func TestDocumentText(t *testing.T) {
	doc := &Document{
		Title: "policy.pdf",
		Pages: []Page{
			{Number: 1, Text: "Access Control Policy\n"},
			{Number: 2, Text: "   "},
			{Number: 3, Text: "Accounts are reviewed quarterly."},
		},
	}
	assert.Equal(t, "Access Control Policy\n\nAccounts are reviewed quarterly.", doc.Text())
}
