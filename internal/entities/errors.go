package entities

import "errors"

// Error kinds raised by handlers. The dispatcher maps each kind to a fixed
// user-facing message so raw collaborator errors never reach the chat.
var (
	ErrDownload       = errors.New("file download failed")
	ErrUnreadableFile = errors.New("uploaded file could not be read")
	ErrAIProvider     = errors.New("ai provider request failed")
	ErrPriceProvider  = errors.New("price history request failed")
)
