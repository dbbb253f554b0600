// Package pdftext reads back the text layer of rendered resumes.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned for payloads without a PDF header.
var ErrNotPDF = errors.New("payload is not a pdf")

// Document is the extracted view of a PDF.
type Document struct {
	Pages int
	Text  string
}

// Extract returns the page count and plain text of data.
func Extract(ctx context.Context, data []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return Document{}, ErrNotPDF
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return Document{}, fmt.Errorf("read text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Document{}, fmt.Errorf("read text: %w", err)
	}
	return Document{Pages: reader.NumPage(), Text: buf.String()}, nil
}

// Text is Extract without the page count.
func Text(ctx context.Context, data []byte) (string, error) {
	doc, err := Extract(ctx, data)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}
