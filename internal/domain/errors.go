package domain

import "errors"

// ErrDocumentTooLarge signals a fetched document blew past the configured
// size cap before rasterization.
var ErrDocumentTooLarge = errors.New("document exceeds maximum allowed size")
