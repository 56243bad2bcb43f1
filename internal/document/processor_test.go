package document

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billex/internal/config"
	"billex/internal/domain"
)

func testPNGBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// stubRunner fakes pdftoppm by writing page files next to the prefix it is
// handed, or failing outright.
type stubRunner struct {
	t     *testing.T
	pages int
	err   error
}

func (r stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if r.err != nil {
		return nil, []byte("command failed"), r.err
	}
	prefix := args[len(args)-1]
	for i := 1; i <= r.pages; i++ {
		path := fmt.Sprintf("%s-%d.png", prefix, i)
		if err := os.WriteFile(path, testPNGBytes(r.t), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func newTestProcessor(runner Runner) *Processor {
	p := NewProcessor(&config.FetcherConfig{})
	if runner != nil {
		p.runner = runner
	}
	return p
}

func TestIsPDFReference(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/bill.pdf", true},
		{"https://example.com/BILL.PDF", true},
		{"https://example.com/pdfs/scan.jpg", true}, // substring match, by contract
		{"https://example.com/download?format=pdf", true},
		{"https://example.com/bill.jpg", false},
		{"https://example.com/bill.png", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPDFReference(tt.url), tt.url)
	}
}

func TestProcess_Image_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(testPNGBytes(t))
	}))
	defer server.Close()

	p := newTestProcessor(nil)

	pages, err := p.Process(context.Background(), server.URL+"/bill.png")
	require.NoError(t, err)

	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].PageNumber)
	assert.Equal(t, "image/png", pages[0].MediaType)
	assert.NotEmpty(t, pages[0].ImageData)

	// Re-encoded payload must itself decode as a PNG.
	_, err = png.Decode(bytes.NewReader(pages[0].ImageData))
	assert.NoError(t, err)
}

func TestProcess_Image_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := newTestProcessor(nil)

	pages, err := p.Process(context.Background(), server.URL+"/missing.png")
	assert.Nil(t, pages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process image")
	assert.Contains(t, err.Error(), "status 404")
}

func TestProcess_Image_NotAnImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not pixels</html>"))
	}))
	defer server.Close()

	p := newTestProcessor(nil)

	_, err := p.Process(context.Background(), server.URL+"/bill.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process image")
}

func TestProcess_PDF_MultiPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake document"))
	}))
	defer server.Close()

	p := newTestProcessor(stubRunner{t: t, pages: 3})

	pages, err := p.Process(context.Background(), server.URL+"/statement.pdf")
	require.NoError(t, err)

	require.Len(t, pages, 3)
	for i, page := range pages {
		assert.Equal(t, i+1, page.PageNumber)
		assert.Equal(t, "image/png", page.MediaType)
		assert.NotEmpty(t, page.ImageData)
	}
}

func TestProcess_PDF_TooLarge(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 1<<20+10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer server.Close()

	p := NewProcessor(&config.FetcherConfig{MaxPDFSizeMB: 1})
	p.runner = stubRunner{t: t, pages: 1}

	_, err := p.Process(context.Background(), server.URL+"/huge.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentTooLarge)
	assert.Contains(t, err.Error(), "failed to process PDF")
}

func TestProcess_PDF_RasterizeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake document"))
	}))
	defer server.Close()

	p := newTestProcessor(stubRunner{t: t, err: assert.AnError})

	_, err := p.Process(context.Background(), server.URL+"/statement.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process PDF")
	assert.Contains(t, err.Error(), "rasterizing PDF")
}

func TestProcess_PDF_NoPagesRendered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake document"))
	}))
	defer server.Close()

	p := newTestProcessor(stubRunner{t: t, pages: 0})

	_, err := p.Process(context.Background(), server.URL+"/statement.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages rendered")
}
