package interfaces

import (
	"context"

	"project_botAnalis/internal/entities"
)

type AIClient interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

type Messenger interface {
	SendText(chatID int64, text string) error
	SendFile(chatID int64, path, name string) error
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// PriceClient fetches daily closing prices over a fixed 6-month window.
type PriceClient interface {
	History(ctx context.Context, symbol string) ([]entities.PricePoint, error)
}

// DocumentConverter reads and writes word-processing documents.
type DocumentConverter interface {
	ExtractText(path string) (string, error)
	Compose(path, text string) error
}

// WorkbookStore reads uploaded workbooks and writes analysis workbooks.
type WorkbookStore interface {
	Load(path string) (entities.Dataset, error)
	WriteAnalysis(path string, data entities.Dataset, summary []entities.ColumnSummary) error
}
