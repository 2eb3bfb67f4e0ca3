package usecases

import (
	"context"
	"os"

	"project_botAnalis/internal/entities"
)

type sentText struct {
	chatID int64
	text   string
}

type sentFile struct {
	chatID  int64
	name    string
	content []byte
}

type fakeMessenger struct {
	texts       []sentText
	files       []sentFile
	payload     []byte
	downloadErr error
}

func (m *fakeMessenger) SendText(chatID int64, text string) error {
	m.texts = append(m.texts, sentText{chatID: chatID, text: text})
	return nil
}

func (m *fakeMessenger) SendFile(chatID int64, path, name string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	m.files = append(m.files, sentFile{chatID: chatID, name: name, content: content})
	return nil
}

func (m *fakeMessenger) Download(ctx context.Context, fileID string) ([]byte, error) {
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	return m.payload, nil
}

type fakeAI struct {
	prompts  []string
	response string
	err      error
}

func (a *fakeAI) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	a.prompts = append(a.prompts, prompt)
	if a.err != nil {
		return "", a.err
	}
	return a.response, nil
}

type fakePrices struct {
	calls  int
	series []entities.PricePoint
	err    error
}

func (p *fakePrices) History(ctx context.Context, symbol string) ([]entities.PricePoint, error) {
	p.calls++
	return p.series, p.err
}

type fakeConverter struct {
	extracted  string
	extractErr error
	composed   []string
}

func (c *fakeConverter) ExtractText(path string) (string, error) {
	if c.extractErr != nil {
		return "", c.extractErr
	}
	return c.extracted, nil
}

func (c *fakeConverter) Compose(path, text string) error {
	c.composed = append(c.composed, text)
	return os.WriteFile(path, []byte(text), 0o600)
}

type fakeWorkbookStore struct {
	dataset      entities.Dataset
	loadErr      error
	wroteData    *entities.Dataset
	wroteSummary []entities.ColumnSummary
}

func (s *fakeWorkbookStore) Load(path string) (entities.Dataset, error) {
	if s.loadErr != nil {
		return entities.Dataset{}, s.loadErr
	}
	return s.dataset, nil
}

func (s *fakeWorkbookStore) WriteAnalysis(path string, data entities.Dataset, summary []entities.ColumnSummary) error {
	s.wroteData = &data
	s.wroteSummary = summary
	return os.WriteFile(path, []byte("workbook"), 0o600)
}
