package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driven"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driving"
	"github.com/custodia-labs/hl7inspect/internal/logger"
)

// Ensure InspectService implements the interface.
var _ driving.InspectService = (*InspectService)(nil)

// InspectService reads a message file and extracts its HL7v2 messages.
type InspectService struct {
	reader    driven.ContentReader
	extractor driven.MessageExtractor
}

// NewInspectService creates a new inspect service.
func NewInspectService(reader driven.ContentReader, extractor driven.MessageExtractor) *InspectService {
	return &InspectService{
		reader:    reader,
		extractor: extractor,
	}
}

// Load reads path and returns its messages in file order.
func (s *InspectService) Load(ctx context.Context, path string) ([]domain.Message, error) {
	if s.reader == nil || s.extractor == nil {
		return nil, fmt.Errorf("inspect service not configured: %w", domain.ErrInvalidInput)
	}

	raw, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("read %d bytes from %s (rtf=%t)", len(raw.Text), path, raw.IsRTF())

	messages := s.extractor.Extract(raw)
	if len(messages) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNoMessages)
	}

	segments := 0
	for _, msg := range messages {
		segments += len(msg.Segments)
	}
	logger.Debug("extracted %d message(s), %d segment(s)", len(messages), segments)

	return messages, nil
}
