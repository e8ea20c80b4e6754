package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestGoChannelPublisher_PublishAndSubscribe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := NewGoChannelPublisher(logger)
	defer pub.Close()

	ctx := context.Background()
	messages, err := pub.Subscribe(ctx, TopicEmailSent)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	event := EmailSentEvent{
		To:      "ana@example.com",
		Subject: "Welcome",
		Type:    "confirmation",
		Status:  "sent",
		SentAt:  time.Now().UTC(),
	}
	if err := pub.Publish(ctx, TopicEmailSent, event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case msg := <-messages:
		var got EmailSentEvent
		if err := json.Unmarshal(msg.Payload, &got); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if got.To != event.To || got.Subject != event.Subject {
			t.Errorf("unexpected event: %+v", got)
		}
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestMockEventPublisher_Records(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mock := NewMockEventPublisher(logger)

	ctx := context.Background()
	if err := mock.Publish(ctx, TopicUserRegistered, UserRegisteredEvent{UserID: "u1"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	recorded := mock.GetPublishedEvents()
	if len(recorded) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(recorded))
	}
	if recorded[0].Topic != TopicUserRegistered {
		t.Errorf("unexpected topic: %s", recorded[0].Topic)
	}
}
