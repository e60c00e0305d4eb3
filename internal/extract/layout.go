// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// ElementKind classifies a layout element on a page.
type ElementKind string

const (
	// KindText is a text container: a run of text in reading order.
	KindText ElementKind = "text"
	// KindFigure is a non-text element such as an image or drawing.
	KindFigure ElementKind = "figure"
)

// Element is one layout item on a page.
type Element struct {
	Kind ElementKind
	Text string
}

// Page holds the layout elements of one page in layout order.
type Page struct {
	// Number is the 1-indexed page number.
	Number   int
	Elements []Element
}

// LayoutSource yields the pages of a document. Different PDF backends
// implement this interface; tests supply canned pages.
type LayoutSource interface {
	// Pages returns the pages of the document at path that fall inside
	// pages, in document order.
	Pages(ctx context.Context, path string, pages types.PageRange) ([]Page, error)
}

// PDFSource reads layout from PDF files with github.com/ledongthuc/pdf.
// Each line of a page's plain text becomes one text element.
type PDFSource struct{}

// Pages opens the PDF at path and returns the selected pages. Pages that
// carry no content object are skipped; range bounds past the end of the
// document are ignored. The pdf package panics on some malformed object and
// cross-reference data; those panics come back as errors.
func (PDFSource) Pages(ctx context.Context, path string, pages types.PageRange) (out []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("parsing PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	for n := 1; n <= total; n++ {
		if !pages.Contains(n) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d of %s: %w", n, path, err)
		}
		out = append(out, Page{Number: n, Elements: textElements(text)})
	}
	return out, nil
}

// textElements splits page text into newline-terminated text elements,
// dropping blank lines.
func textElements(text string) []Element {
	var elems []Element
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		elems = append(elems, Element{Kind: KindText, Text: line + "\n"})
	}
	return elems
}
