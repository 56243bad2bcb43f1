package extract

import (
	"context"
	"encoding/json"
	"log"

	"billex/internal/domain"
	"billex/internal/port"
)

// flatItem is a bill item tagged with its source page, the unit the
// reconciliation pass works over.
type flatItem struct {
	PageNo   string `json:"page_no"`
	PageType string `json:"page_type"`
	domain.BillItem
}

// deduplicate asks the model to reconcile items repeated across pages, e.g.
// a final-bill summary restating detail-page items. The model answers with
// the items to KEEP, never the ones to remove, so compound duplicates stay
// unambiguous. Best effort: any failure returns the input unchanged.
func (s *extractionService) deduplicate(ctx context.Context, pages []domain.PageResult, tracker *TokenTracker) []domain.PageResult {
	if len(pages) <= 1 {
		return pages
	}

	var all []flatItem
	for _, page := range pages {
		for _, item := range page.BillItems {
			all = append(all, flatItem{PageNo: page.PageNo, PageType: page.PageType, BillItem: item})
		}
	}
	if len(all) <= dedupMinItems {
		return pages
	}

	encoded, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return pages
	}

	resp, err := s.model.Complete(ctx, port.CompletionRequest{
		User:        dedupPrompt(string(encoded)),
		MaxTokens:   maxCompletionTokens,
		Temperature: samplingTemperature,
	})
	if err != nil {
		log.Printf("deduplicating items: %v", err)
		return pages
	}
	tracker.Add(resp.Usage)

	var parsed struct {
		ItemsToKeep []flatItem `json:"items_to_keep"`
	}
	if !decodeModelJSON(resp.Text, &parsed) {
		log.Printf("failed to parse deduplication response: %s", truncate(resp.Text, 500))
		return pages
	}

	// Rebuild each page from the keep list by page_no string equality. An
	// item the model re-tagged with an unknown page_no is dropped here.
	deduped := make([]domain.PageResult, 0, len(pages))
	for _, page := range pages {
		items := []domain.BillItem{}
		for _, kept := range parsed.ItemsToKeep {
			if kept.PageNo == page.PageNo {
				items = append(items, kept.BillItem)
			}
		}
		deduped = append(deduped, domain.PageResult{
			PageNo:    page.PageNo,
			PageType:  page.PageType,
			BillItems: items,
		})
	}
	return deduped
}
