package repository

import (
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/interfaces"
)

// DocxConverter reads and writes Word documents.
type DocxConverter struct{}

var _ interfaces.DocumentConverter = (*DocxConverter)(nil)

func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

// ExtractText flattens all paragraph text in document order, joined with
// newlines.
func (c *DocxConverter) ExtractText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrUnreadableFile, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrUnreadableFile, err)
	}

	doc, err := docx.Parse(file, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrUnreadableFile, err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			lines = append(lines, fmt.Sprint(para))
		}
	}
	return strings.Join(lines, "\n"), nil
}

// Compose writes a new document containing text as a single paragraph.
func (c *DocxConverter) Compose(path, text string) error {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(text)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	defer file.Close()

	if _, err := doc.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
