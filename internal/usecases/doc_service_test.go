package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_botAnalis/internal/entities"
)

func docMessage() entities.InboundMessage {
	return entities.InboundMessage{
		ChatID:   9,
		Document: &entities.Attachment{FileID: "doc-1", FileName: "report.docx", MimeType: MimeDOCX},
	}
}

func TestDocServiceEmptyDocumentSkipsAI(t *testing.T) {
	messenger := &fakeMessenger{payload: []byte("docx bytes")}
	ai := &fakeAI{}
	converter := &fakeConverter{extracted: "  \n\t \n"}
	s := NewDocService(converter, ai, messenger)

	err := s.Handle(context.Background(), docMessage())

	require.NoError(t, err)
	require.Len(t, messenger.texts, 1)
	assert.Equal(t, "Document is empty.", messenger.texts[0].text)
	assert.Empty(t, ai.prompts)
	assert.Empty(t, converter.composed)
}

func TestDocServiceRewritesAndRepliesWithFile(t *testing.T) {
	messenger := &fakeMessenger{payload: []byte("docx bytes")}
	ai := &fakeAI{response: "A polished version."}
	converter := &fakeConverter{extracted: "a rough draft"}
	s := NewDocService(converter, ai, messenger)

	err := s.Handle(context.Background(), docMessage())

	require.NoError(t, err)
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Rewrite this professionally while preserving meaning:")
	assert.Contains(t, ai.prompts[0], "a rough draft")

	require.Equal(t, []string{"A polished version."}, converter.composed)
	require.Len(t, messenger.files, 1)
	assert.Equal(t, "rewritten.docx", messenger.files[0].name)
	assert.Empty(t, messenger.texts)
}

func TestDocServiceDownloadErrorPropagates(t *testing.T) {
	messenger := &fakeMessenger{downloadErr: fmt.Errorf("%w: status 404", entities.ErrDownload)}
	ai := &fakeAI{}
	s := NewDocService(&fakeConverter{}, ai, messenger)

	err := s.Handle(context.Background(), docMessage())

	require.ErrorIs(t, err, entities.ErrDownload)
	assert.Empty(t, ai.prompts)
	assert.Empty(t, messenger.texts)
}
