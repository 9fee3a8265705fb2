// Package audit publishes order activity entries to the configured sinks.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

type Sink interface {
	AppendLog(ctx context.Context, orderID string, entry entities.ActivityLog) error
}

// Message is the payload written to the activity topic.
type Message struct {
	OrderID   string    `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
	Activity  string    `json:"activity"`
	User      string    `json:"user"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaSink struct {
	writer MessageWriter
}

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AuditTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	}
}

func NewKafkaSink(writer MessageWriter) *kafkaSink {
	return &kafkaSink{writer: writer}
}

// AppendLog пишет запись с ключом заказа, чтобы записи одного заказа шли по порядку
func (s *kafkaSink) AppendLog(ctx context.Context, orderID string, entry entities.ActivityLog) error {
	value, err := json.Marshal(Message{
		OrderID:   orderID,
		Timestamp: entry.Timestamp,
		Activity:  entry.Activity,
		User:      entry.User,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	if err := s.writer.WriteMessages(ctx, kafka.Message{Key: []byte(orderID), Value: value}); err != nil {
		return fmt.Errorf("failed to write activity: %w", err)
	}
	return nil
}

type fanout struct {
	sinks []Sink
}

// Fanout writes every entry to all sinks concurrently and joins their errors.
func Fanout(sinks ...Sink) *fanout {
	return &fanout{sinks: sinks}
}

func (f *fanout) AppendLog(ctx context.Context, orderID string, entry entities.ActivityLog) error {
	errs := make([]error, len(f.sinks))

	var g errgroup.Group
	for i, sink := range f.sinks {
		i, sink := i, sink
		g.Go(func() error {
			errs[i] = sink.AppendLog(ctx, orderID, entry)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
