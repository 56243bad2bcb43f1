package port

import (
	"context"

	"billex/internal/domain"
)

// DocumentProcessor fetches a referenced document and rasterizes it into an
// ordered sequence of page images, one entry per physical page.
type DocumentProcessor interface {
	Process(ctx context.Context, documentURL string) ([]domain.PageImage, error)
}
