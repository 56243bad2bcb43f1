package handler

import (
	"github.com/gin-gonic/gin"

	"billex/internal/domain"
)

// ExtractionResponse is the success envelope for bill extraction.
type ExtractionResponse struct {
	IsSuccess  bool                  `json:"is_success"`
	TokenUsage domain.TokenUsage     `json:"token_usage"`
	Data       domain.ExtractionData `json:"data"`
}

// ErrorResponse is the failure envelope shared by all endpoints.
type ErrorResponse struct {
	IsSuccess bool   `json:"is_success"`
	Message   string `json:"message"`
}

// RespondError sends a failure envelope with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{IsSuccess: false, Message: msg})
}
