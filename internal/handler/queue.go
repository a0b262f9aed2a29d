package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/bookhive/lending-service/pkg/kafka"
	"go.uber.org/zap"
)

// Enqueuer pushes audit events to the loan topic. The audit trail is best
// effort like every other commit: a publish failure is logged, the loan stands.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, any) error { return nil }

func (h *Handler) publishLoanEvent(ctx context.Context, recordID, isbn, userEmail, action string) {
	event := kafka.EventLoan{
		RecordID: recordID,
		BookISBN: isbn,
		Action:   action,
		At:       time.Now(),
	}
	if user, ok := h.membershipSvc.FindUserByEmail(ctx, userEmail); ok {
		event.UserID = user.UserID
	}
	if err := h.enqueuer.Enqueue(kafka.LoanTopic, event); err != nil {
		h.log.Warn("loan event publish failed", zap.String("recordId", recordID), zap.Error(err))
	}
}
