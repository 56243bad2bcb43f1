package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billex/internal/extract"
	"billex/internal/port"
)

// BillHandler handles bill extraction endpoints.
type BillHandler struct {
	processor port.DocumentProcessor
	extractor extract.Service
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(processor port.DocumentProcessor, extractor extract.Service) *BillHandler {
	return &BillHandler{processor: processor, extractor: extractor}
}

// Extract handles POST /extract-bill-data
// @Summary Extract bill line items
// @Description Fetch a bill document by URL, rasterize it, and extract deduplicated line items per page
// @Accept json
// @Produce json
// @Router /extract-bill-data [post]
func (h *BillHandler) Extract(c *gin.Context) {
	var req struct {
		Document string `json:"document"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Document == "" {
		RespondError(c, http.StatusBadRequest, "Document URL is required")
		return
	}

	pages, err := h.processor.Process(c.Request.Context(), req.Document)
	if err != nil {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] processing document: %v", requestID, err)
		RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := h.extractor.ExtractLineItems(c.Request.Context(), pages)
	if err != nil {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] extracting line items: %v", requestID, err)
		RespondError(c, http.StatusInternalServerError, "Failed to process document. Internal server error occurred")
		return
	}

	c.JSON(http.StatusOK, ExtractionResponse{
		IsSuccess:  true,
		TokenUsage: result.TokenUsage,
		Data:       result.Data,
	})
}
