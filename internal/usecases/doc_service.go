package usecases

import (
	"context"
	"strings"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/infrastructure"
	"project_botAnalis/internal/interfaces"
)

const emptyDocument = "Document is empty."

const rewriteInstruction = "Rewrite this professionally while preserving meaning:\n\n"

// DocService handles Word uploads: it extracts the document text, asks the
// AI to rewrite it and replies with a new single-paragraph document.
type DocService struct {
	converter interfaces.DocumentConverter
	ai        interfaces.AIClient
	messenger interfaces.Messenger
}

func NewDocService(converter interfaces.DocumentConverter, ai interfaces.AIClient, messenger interfaces.Messenger) *DocService {
	return &DocService{converter: converter, ai: ai, messenger: messenger}
}

func (s *DocService) Handle(ctx context.Context, msg entities.InboundMessage) error {
	data, err := s.messenger.Download(ctx, msg.Document.FileID)
	if err != nil {
		return err
	}

	ws, err := infrastructure.NewWorkspace()
	if err != nil {
		return err
	}
	defer ws.Cleanup()

	inputPath, err := ws.WriteFile("input.docx", data)
	if err != nil {
		return err
	}

	text, err := s.converter.ExtractText(inputPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return s.messenger.SendText(msg.ChatID, emptyDocument)
	}

	rewritten, err := s.ai.GenerateResponse(ctx, rewriteInstruction+text)
	if err != nil {
		return err
	}

	outputPath := ws.Path("rewritten.docx")
	if err := s.converter.Compose(outputPath, rewritten); err != nil {
		return err
	}

	return s.messenger.SendFile(msg.ChatID, outputPath, "rewritten.docx")
}
