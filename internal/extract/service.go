package extract

import (
	"context"
	"log"
	"strconv"

	"billex/internal/domain"
	"billex/internal/port"
)

const (
	maxCompletionTokens = 4096
	samplingTemperature = 0.1

	// dedupMinItems is the flattened item count below which the
	// reconciliation pass is skipped; it only pays for itself above a
	// minimal item volume.
	dedupMinItems = 5
)

// Service extracts structured line items from rasterized bill pages.
type Service interface {
	ExtractLineItems(ctx context.Context, pages []domain.PageImage) (*domain.ExtractionResult, error)
}

type extractionService struct {
	model port.VisionModel
}

// NewService creates an extraction service backed by the given vision model.
func NewService(model port.VisionModel) Service {
	return &extractionService{model: model}
}

// ExtractLineItems runs one model call per page in page order, then a single
// cross-page deduplication pass. Page and dedup failures are absorbed by the
// inner steps, so this never fails with a recoverable error.
func (s *extractionService) ExtractLineItems(ctx context.Context, pages []domain.PageImage) (*domain.ExtractionResult, error) {
	tracker := NewTokenTracker()

	// Strictly sequential: keeps pagewise results in input order and bounds
	// the in-flight load on the model provider to one call per request.
	results := make([]domain.PageResult, 0, len(pages))
	for _, page := range pages {
		results = append(results, s.extractPage(ctx, page, tracker))
	}

	results = s.deduplicate(ctx, results, tracker)

	total := 0
	for _, r := range results {
		total += len(r.BillItems)
	}

	return &domain.ExtractionResult{
		TokenUsage: tracker.Usage(),
		Data: domain.ExtractionData{
			PagewiseLineItems: results,
			TotalItemCount:    total,
		},
	}, nil
}

// extractPage never fails: a model or parse error degrades to an empty
// result for that page so one bad page cannot sink the whole document.
func (s *extractionService) extractPage(ctx context.Context, page domain.PageImage, tracker *TokenTracker) domain.PageResult {
	result := domain.PageResult{
		PageNo:    strconv.Itoa(page.PageNumber),
		PageType:  domain.PageTypeBillDetail,
		BillItems: []domain.BillItem{},
	}

	resp, err := s.model.Complete(ctx, port.CompletionRequest{
		System: systemPrompt(),
		User:   pagePrompt(page.PageNumber),
		Image: &port.ImageAttachment{
			Data:      page.ImageData,
			MediaType: page.MediaType,
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: samplingTemperature,
	})
	if err != nil {
		log.Printf("extracting items from page %d: %v", page.PageNumber, err)
		return result
	}
	tracker.Add(resp.Usage)

	var parsed map[string]interface{}
	if !decodeModelJSON(resp.Text, &parsed) {
		log.Printf("failed to parse model response for page %d: %s", page.PageNumber, truncate(resp.Text, 500))
		return result
	}

	if pageType, ok := parsed["page_type"].(string); ok && pageType != "" {
		result.PageType = pageType
	}
	if rawItems, ok := parsed["bill_items"].([]interface{}); ok {
		for _, entry := range rawItems {
			fields, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			result.BillItems = append(result.BillItems, normalizeItem(fields))
		}
	}
	return result
}
