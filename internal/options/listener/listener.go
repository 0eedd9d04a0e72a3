package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/options"
	"github.com/matbaa/storefront-service/pkg/broker"
	"github.com/matbaa/storefront-service/pkg/logger"
)

// SchemaListener invalidates cached option schemas when the catalog
// publishes a product change.
type SchemaListener struct {
	consumer *broker.KafkaConsumer
	uc       options.UseCase
	logger   logger.ZapLogger
}

func NewSchemaListener(consumer *broker.KafkaConsumer, uc options.UseCase, logger logger.ZapLogger) *SchemaListener {
	return &SchemaListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *SchemaListener) Start(ctx context.Context) {
	l.logger.Info("Starting catalog schema listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping catalog schema listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type ProductChangedEvent struct {
	EventID   string                `json:"event_id"`
	EventType string                `json:"event_type"`
	Payload   ProductChangedPayload `json:"payload"`
	Timestamp time.Time             `json:"timestamp"`
}

type ProductChangedPayload struct {
	ProductID int64 `json:"product_id"`
}

func (l *SchemaListener) processMessage(ctx context.Context, value []byte) {
	var event ProductChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	switch event.EventType {
	case "ProductUpdated", "ProductDeleted", "ProductOptionsChanged":
	default:
		return
	}

	l.logger.Info("Invalidating option schema cache",
		zap.String("event_type", event.EventType),
		zap.Int64("product_id", event.Payload.ProductID),
	)

	if err := l.uc.InvalidateSchema(ctx, event.Payload.ProductID); err != nil {
		l.logger.Error("Failed to invalidate schema cache",
			zap.Int64("product_id", event.Payload.ProductID),
			zap.Error(err),
		)
	}
}
