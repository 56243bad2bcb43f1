package document

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"billex/internal/config"
	"billex/internal/domain"
)

// Processor fetches a document by URL and rasterizes it into page images.
// PDFs are rendered one PNG per page via poppler's pdftoppm; plain images
// become a single page. Every page is re-encoded to PNG before handoff to
// the model so the wire format is uniform regardless of source.
type Processor struct {
	cfg         config.FetcherConfig
	runner      Runner
	pdfClient   *http.Client
	imageClient *http.Client
}

// NewProcessor creates a document processor from fetcher config.
func NewProcessor(cfg *config.FetcherConfig) *Processor {
	c := *cfg
	if c.PDFTimeoutSecs <= 0 {
		c.PDFTimeoutSecs = 60
	}
	if c.ImageTimeoutSecs <= 0 {
		c.ImageTimeoutSecs = 30
	}
	if c.MaxPDFSizeMB <= 0 {
		c.MaxPDFSizeMB = 100
	}
	if c.RasterDPI <= 0 {
		c.RasterDPI = 200
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	return &Processor{
		cfg:         c,
		runner:      execRunner{},
		pdfClient:   &http.Client{Timeout: time.Duration(c.PDFTimeoutSecs) * time.Second},
		imageClient: &http.Client{Timeout: time.Duration(c.ImageTimeoutSecs) * time.Second},
	}
}

// IsPDFReference reports whether a document reference should take the PDF
// rasterization path. Any occurrence of "pdf" in the reference counts, not
// just the file extension, so query strings and path segments match too.
func IsPDFReference(documentURL string) bool {
	return strings.Contains(strings.ToLower(documentURL), "pdf")
}

// Process classifies the reference, fetches the document, and returns its
// pages in physical order with 1-based numbering.
func (p *Processor) Process(ctx context.Context, documentURL string) ([]domain.PageImage, error) {
	if IsPDFReference(documentURL) {
		pages, err := p.processPDF(ctx, documentURL)
		if err != nil {
			return nil, fmt.Errorf("failed to process PDF: %w", err)
		}
		return pages, nil
	}

	pages, err := p.processImage(ctx, documentURL)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}
	return pages, nil
}

func (p *Processor) processPDF(ctx context.Context, documentURL string) ([]domain.PageImage, error) {
	data, err := p.fetch(ctx, p.pdfClient, documentURL, p.cfg.MaxPDFSizeMB<<20)
	if err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "billex-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	pdfPath := filepath.Join(tmpDir, "document.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("writing temp PDF: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <document.pdf> <tmp/page>
	_, errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm, "-r", strconv.Itoa(p.cfg.RasterDPI), "-png", pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("rasterizing PDF: %v: %s", err, bytes.TrimSpace(errb))
	}

	// pdftoppm zero-pads page numbers, so lexical order is page order
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no pages rendered")
	}

	pages := make([]domain.PageImage, 0, len(matches))
	for i, path := range matches {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("decoding rendered page %d: %w", i+1, err)
		}
		encoded, err := encodePNG(img)
		if err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", i+1, err)
		}
		pages = append(pages, domain.PageImage{
			PageNumber: i + 1,
			ImageData:  encoded,
			MediaType:  "image/png",
		})
	}
	return pages, nil
}

func (p *Processor) processImage(ctx context.Context, documentURL string) ([]domain.PageImage, error) {
	data, err := p.fetch(ctx, p.imageClient, documentURL, 0)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	encoded, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return []domain.PageImage{{
		PageNumber: 1,
		ImageData:  encoded,
		MediaType:  "image/png",
	}}, nil
}

// fetch downloads the document body. A maxBytes of 0 means no size cap.
func (p *Processor) fetch(ctx context.Context, client *http.Client, documentURL string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching document: status %d", resp.StatusCode)
	}

	if maxBytes <= 0 {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading document body: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading document body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrDocumentTooLarge
	}
	return data, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
