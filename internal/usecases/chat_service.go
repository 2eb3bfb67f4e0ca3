package usecases

import (
	"context"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/interfaces"
)

// ChatService forwards plain text to the AI client and replies with the
// generated text verbatim. Each message is an independent single-turn
// request; no conversation state is kept.
type ChatService struct {
	ai        interfaces.AIClient
	messenger interfaces.Messenger
}

func NewChatService(ai interfaces.AIClient, messenger interfaces.Messenger) *ChatService {
	return &ChatService{ai: ai, messenger: messenger}
}

func (s *ChatService) Handle(ctx context.Context, msg entities.InboundMessage) error {
	response, err := s.ai.GenerateResponse(ctx, msg.Text)
	if err != nil {
		return err
	}
	return s.messenger.SendText(msg.ChatID, response)
}
