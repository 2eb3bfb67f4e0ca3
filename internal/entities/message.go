package entities

// Attachment describes a document uploaded alongside a message.
type Attachment struct {
	FileID   string
	FileName string
	MimeType string
	Size     int64
}

// InboundMessage is a single user action. It is consumed synchronously by
// exactly one handler and then discarded.
type InboundMessage struct {
	ChatID    int64
	MessageID int
	From      string // sender username, for logging only
	Text      string
	Command   string   // command name without the slash, "" if not a command
	Args      []string // command arguments
	Document  *Attachment
}
