package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

// --- Mock implementations ---

// mockContentReader implements driven.ContentReader for testing.
type mockContentReader struct {
	raw      domain.RawContent
	err      error
	lastPath string
}

func (m *mockContentReader) Read(_ context.Context, path string) (domain.RawContent, error) {
	m.lastPath = path
	if m.err != nil {
		return domain.RawContent{}, m.err
	}
	return m.raw, nil
}

// mockExtractor implements driven.MessageExtractor for testing.
type mockExtractor struct {
	messages []domain.Message
	seen     domain.RawContent
}

func (m *mockExtractor) Extract(raw domain.RawContent) []domain.Message {
	m.seen = raw
	return m.messages
}

func oneMessage() []domain.Message {
	return []domain.Message{{Segments: []domain.SegmentLine{
		{ID: "MSH", Fields: []string{"MSH", `^~\&`, "A"}},
		{ID: "PID", Fields: []string{"PID", "1"}},
	}}}
}

func TestInspectService_Load_Success(t *testing.T) {
	reader := &mockContentReader{raw: domain.RawContent{Path: "a.hl7", Text: "MSH|^~\\&|A\nPID|1"}}
	extractor := &mockExtractor{messages: oneMessage()}
	service := NewInspectService(reader, extractor)

	messages, err := service.Load(context.Background(), "a.hl7")

	require.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, "a.hl7", reader.lastPath)
	assert.Equal(t, reader.raw, extractor.seen)
}

func TestInspectService_Load_ReaderError(t *testing.T) {
	reader := &mockContentReader{err: fmt.Errorf("missing.hl7: %w", domain.ErrFileNotFound)}
	service := NewInspectService(reader, &mockExtractor{})

	messages, err := service.Load(context.Background(), "missing.hl7")

	assert.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Nil(t, messages)
}

func TestInspectService_Load_NoMessages(t *testing.T) {
	reader := &mockContentReader{raw: domain.RawContent{Text: "hello\nworld"}}
	service := NewInspectService(reader, &mockExtractor{})

	messages, err := service.Load(context.Background(), "notes.txt")

	assert.ErrorIs(t, err, domain.ErrNoMessages)
	assert.Nil(t, messages)
}

func TestInspectService_Load_NotConfigured(t *testing.T) {
	service := NewInspectService(nil, nil)

	_, err := service.Load(context.Background(), "a.hl7")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
