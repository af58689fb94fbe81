package services

import (
	"context"
	"encoding/json"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/internal/infrastructure/buffer"
	"github.com/eliteprops/backend/usecase"
)

// BufferBridge adapts the processor to the usecase.SubmissionBuffer port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferVisit(ctx context.Context, visit *domain.SiteVisit) error {
	if b.processor == nil || visit == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(visit)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        visit.ID,
		Entity:    buffer.EntitySiteVisit,
		Operation: buffer.OperationCreate,
		Data:      payload,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.SubmissionBuffer = (*BufferBridge)(nil)
