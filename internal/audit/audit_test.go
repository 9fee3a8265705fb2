package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

type recordingSink struct {
	mu      sync.Mutex
	entries []entities.ActivityLog
	err     error
}

func (s *recordingSink) AppendLog(_ context.Context, _ string, entry entities.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return s.err
}

func TestKafkaSink_AppendLog(t *testing.T) {
	w := &recordingWriter{}
	sink := NewKafkaSink(w)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	err := sink.AppendLog(context.Background(), "o1", entities.ActivityLog{Timestamp: ts, Activity: "Order created", User: "alice"})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("o1"), w.msgs[0].Key)

	var got Message
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, Message{OrderID: "o1", Timestamp: ts, Activity: "Order created", User: "alice"}, got)
}

func TestKafkaSink_WriteError(t *testing.T) {
	writeErr := errors.New("broker down")
	sink := NewKafkaSink(&recordingWriter{err: writeErr})

	err := sink.AppendLog(context.Background(), "o1", entities.ActivityLog{})

	assert.ErrorIs(t, err, writeErr)
}

func TestFanout(t *testing.T) {
	sinkErr := errors.New("sink failed")
	ok := &recordingSink{}
	failing := &recordingSink{err: sinkErr}

	err := Fanout(ok, failing).AppendLog(context.Background(), "o1", entities.ActivityLog{Activity: "x"})

	assert.ErrorIs(t, err, sinkErr)
	assert.Len(t, ok.entries, 1)
	assert.Len(t, failing.entries, 1)
}
