package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// PublishedEvent is one recorded Publish call.
type PublishedEvent struct {
	Topic   string
	Payload []byte
}

// MockEventPublisher records published events for assertions in tests.
type MockEventPublisher struct {
	logger *slog.Logger

	mu     sync.Mutex
	events []PublishedEvent
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.events = append(m.events, PublishedEvent{Topic: topic, Payload: payload})
	m.mu.Unlock()

	m.logger.Debug("mock event published", "topic", topic)
	return nil
}

func (m *MockEventPublisher) GetPublishedEvents() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PublishedEvent(nil), m.events...)
}

func (m *MockEventPublisher) Close() error { return nil }
