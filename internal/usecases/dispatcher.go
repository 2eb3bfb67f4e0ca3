package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/infrastructure"
	"project_botAnalis/internal/interfaces"
)

// MIME types Telegram reports for OOXML uploads.
const (
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MessageKind classifies an inbound message for routing.
type MessageKind int

const (
	KindIgnored MessageKind = iota
	KindCommand
	KindSpreadsheet
	KindDocument
	KindText
)

const welcomeText = "Hello! Send me a message to chat, a .docx to rewrite, " +
	"an .xlsx to analyze, or /stock <TICKER> for a price summary."

const helpText = "What I can do:\n" +
	"- Send any text and I reply with an AI answer.\n" +
	"- Upload a Word document (.docx) and I rewrite it professionally.\n" +
	"- Upload an Excel workbook (.xlsx) and I return descriptive statistics.\n" +
	"- /stock <TICKER> gives a 6-month price analysis."

// Dispatcher routes each inbound message to exactly one handler. Handler
// failures are converted into a single labeled text reply; the dispatcher
// and process stay alive.
type Dispatcher struct {
	chat  *ChatService
	stock *StockService
	sheet *SheetService
	doc   *DocService

	messenger interfaces.Messenger
	limiter   *infrastructure.ChatRateLimiter
	timeout   time.Duration
}

func NewDispatcher(
	chat *ChatService,
	stock *StockService,
	sheet *SheetService,
	doc *DocService,
	messenger interfaces.Messenger,
	limiter *infrastructure.ChatRateLimiter,
	timeout time.Duration,
) *Dispatcher {
	return &Dispatcher{
		chat:      chat,
		stock:     stock,
		sheet:     sheet,
		doc:       doc,
		messenger: messenger,
		limiter:   limiter,
		timeout:   timeout,
	}
}

// registeredCommands are the only commands the dispatcher routes; anything
// else starting with a slash is ignored.
var registeredCommands = map[string]bool{
	"start": true,
	"help":  true,
	"stock": true,
}

// Classify decides which handler owns a message. Classification is total
// and deterministic: every message maps to exactly one kind, in precedence
// order command > spreadsheet attachment > document attachment > text.
func Classify(msg entities.InboundMessage) MessageKind {
	if msg.Command != "" {
		if registeredCommands[msg.Command] {
			return KindCommand
		}
		return KindIgnored
	}
	if msg.Document != nil {
		switch msg.Document.MimeType {
		case MimeXLSX:
			return KindSpreadsheet
		case MimeDOCX:
			return KindDocument
		}
		// Strict MIME policy: other attachments are not handled.
		return KindIgnored
	}
	if msg.Text != "" {
		return KindText
	}
	return KindIgnored
}

// Dispatch classifies msg and runs the matching handler under a per-request
// timeout. Exactly one reply (or one error reply) is sent per message.
func (d *Dispatcher) Dispatch(ctx context.Context, msg entities.InboundMessage) {
	kind := Classify(msg)
	if kind == KindIgnored {
		fmt.Printf("[BOT] Ignored update from chat %d\n", msg.ChatID)
		return
	}

	if d.limiter != nil && !d.limiter.Allow(msg.ChatID) {
		d.messenger.SendText(msg.ChatID, "Please wait a moment before sending another request.")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var label string
	var err error

	switch kind {
	case KindCommand:
		label, err = d.dispatchCommand(ctx, msg)
	case KindSpreadsheet:
		label = "Excel processing error:"
		err = d.sheet.Handle(ctx, msg)
	case KindDocument:
		label = "Word processing error:"
		err = d.doc.Handle(ctx, msg)
	case KindText:
		label = "Error:"
		err = d.chat.Handle(ctx, msg)
	}

	if err != nil {
		fmt.Printf("[BOT] Handler failed for chat %d: %v\n", msg.ChatID, err)
		d.messenger.SendText(msg.ChatID, label+" "+userFacingMessage(err))
	}
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, msg entities.InboundMessage) (string, error) {
	switch msg.Command {
	case "start":
		return "Error:", d.messenger.SendText(msg.ChatID, welcomeText)
	case "help":
		return "Error:", d.messenger.SendText(msg.ChatID, helpText)
	case "stock":
		return "Stock analysis error:", d.stock.Handle(ctx, msg)
	}
	return "Error:", nil
}

// userFacingMessage maps an error kind to a fixed, sanitized reply. Raw
// error detail stays in the logs.
func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The request took too long. Please try again."
	case errors.Is(err, entities.ErrDownload):
		return "The file could not be downloaded. Please try again."
	case errors.Is(err, entities.ErrUnreadableFile):
		return "The file could not be read. Please check the format and try again."
	case errors.Is(err, entities.ErrAIProvider):
		return "The AI service is unavailable right now. Please try again later."
	case errors.Is(err, entities.ErrPriceProvider):
		return "Price data is unavailable right now. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
