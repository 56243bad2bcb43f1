package domain

// PageImage is a single rasterized page of a source document, produced by
// the document processor and consumed once by the page extractor.
type PageImage struct {
	PageNumber int // 1-based, matches physical page order
	ImageData  []byte
	MediaType  string
}

// Page types reported by the extraction model.
const (
	PageTypeBillDetail = "Bill Detail"
	PageTypeFinalBill  = "Final Bill"
	PageTypePharmacy   = "Pharmacy"
)

// BillItem is one billed line entry extracted from a page. ItemAmount is the
// net amount after discounts; ItemRate falls back to ItemAmount and
// ItemQuantity to 1 when the bill does not show them separately.
type BillItem struct {
	ItemName     string  `json:"item_name"`
	ItemAmount   float64 `json:"item_amount"`
	ItemRate     float64 `json:"item_rate"`
	ItemQuantity float64 `json:"item_quantity"`
}

// PageResult holds the line items extracted from one page.
type PageResult struct {
	PageNo    string     `json:"page_no"`
	PageType  string     `json:"page_type"`
	BillItems []BillItem `json:"bill_items"`
}

// TokenUsage is the accumulated model token consumption for one request.
type TokenUsage struct {
	TotalTokens  int `json:"total_tokens"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// ExtractionData is the line-item payload of a completed extraction.
type ExtractionData struct {
	PagewiseLineItems []PageResult `json:"pagewise_line_items"`
	TotalItemCount    int          `json:"total_item_count"`
}

// ExtractionResult is the terminal artifact of one extraction request.
type ExtractionResult struct {
	TokenUsage TokenUsage     `json:"token_usage"`
	Data       ExtractionData `json:"data"`
}
