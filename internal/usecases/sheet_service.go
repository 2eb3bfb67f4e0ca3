package usecases

import (
	"context"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/infrastructure"
	"project_botAnalis/internal/interfaces"
)

// SheetService handles spreadsheet uploads: it loads the workbook, computes
// descriptive statistics for every column and replies with a two-sheet
// analysis workbook. No AI involvement.
type SheetService struct {
	store     interfaces.WorkbookStore
	calc      *DescribeCalculator
	messenger interfaces.Messenger
}

func NewSheetService(store interfaces.WorkbookStore, calc *DescribeCalculator, messenger interfaces.Messenger) *SheetService {
	return &SheetService{store: store, calc: calc, messenger: messenger}
}

func (s *SheetService) Handle(ctx context.Context, msg entities.InboundMessage) error {
	data, err := s.messenger.Download(ctx, msg.Document.FileID)
	if err != nil {
		return err
	}

	ws, err := infrastructure.NewWorkspace()
	if err != nil {
		return err
	}
	defer ws.Cleanup()

	inputPath, err := ws.WriteFile("input.xlsx", data)
	if err != nil {
		return err
	}

	dataset, err := s.store.Load(inputPath)
	if err != nil {
		return err
	}
	summary := s.calc.Describe(dataset)

	outputPath := ws.Path("analysis.xlsx")
	if err := s.store.WriteAnalysis(outputPath, dataset, summary); err != nil {
		return err
	}

	return s.messenger.SendFile(msg.ChatID, outputPath, "analysis.xlsx")
}
