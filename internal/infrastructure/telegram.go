package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/interfaces"
)

// TelegramClient wraps the bot API behind the Messenger port.
type TelegramClient struct {
	Bot        *tgbotapi.BotAPI
	httpClient *http.Client
}

var _ interfaces.Messenger = (*TelegramClient)(nil)

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &TelegramClient{Bot: bot, httpClient: http.DefaultClient}, nil
}

func (t *TelegramClient) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := t.Bot.Send(msg)
	return err
}

// SendFile uploads the file at path as a document named name.
func (t *TelegramClient) SendFile(chatID int64, path, name string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = name
	_, err := t.Bot.Send(doc)
	return err
}

// Download fetches an uploaded file's bytes by its Telegram file ID.
func (t *TelegramClient) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := t.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrDownload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(t.Bot.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrDownload, err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", entities.ErrDownload, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrDownload, err)
	}
	return data, nil
}

// SendChatAction shows a "typing" or "uploading" indicator. Failures are
// ignored since the indicator is cosmetic.
func (t *TelegramClient) SendChatAction(chatID int64, action string) {
	t.Bot.Request(tgbotapi.NewChatAction(chatID, action))
}
