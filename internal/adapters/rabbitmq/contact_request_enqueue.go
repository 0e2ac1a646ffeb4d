package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// ContactRequestEventDTO - тело сообщения в очереди contact_requests
type ContactRequestEventDTO struct {
	RequestID  uuid.UUID `json:"request_id"`
	ReceivedAt time.Time `json:"received_at"`
	TraceID    string    `json:"trace_id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	PropertyID string    `json:"property_id,omitempty"`
}

// publisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

type ContactRequestQueueAdapter struct {
	producer   publisher
	routingKey string
}

func NewContactRequestQueueAdapter(producer publisher, routingKey string) (*ContactRequestQueueAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &ContactRequestQueueAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *ContactRequestQueueAdapter) PublishContactRequest(ctx context.Context, req domain.AcceptedContactRequest) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ContactRequestQueueAdapter",
		"routing_key": a.routingKey,
		"request_id":  req.ID.String(),
	})

	traceID := contextkeys.TraceIDFromContext(ctx)

	dto := ContactRequestEventDTO{
		RequestID:  req.ID,
		ReceivedAt: req.ReceivedAt,
		TraceID:    traceID,
		Name:       req.Request.Name,
		Email:      req.Request.Email,
		Phone:      req.Request.Phone,
		Subject:    req.Request.Subject,
		Message:    req.Request.Message,
		PropertyID: req.Request.PropertyID,
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal contact request: %w", err)
	}

	if err := contracts.Validate(contracts.ContactRequestEvent, contracts.SchemaVersionV1, body); err != nil {
		adapterLogger.Error("Contact request event does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid contact request event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    req.ReceivedAt,
		MessageId:    req.ID.String(),
		Type:         contracts.ContactRequestEvent,
		Headers: amqp.Table{
			"x-schema-version": contracts.SchemaVersionV1,
		},
	}
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Info("Publishing contact request", nil)
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish contact request", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish contact request %s: %w", req.ID, err)
	}

	adapterLogger.Info("Successfully published contact request", nil)
	return nil
}
