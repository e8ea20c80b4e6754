package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// GoChannelPublisher publishes events over an in-process Watermill pub/sub.
// It is the default transport when no broker is configured.
type GoChannelPublisher struct {
	pubsub *gochannel.GoChannel
}

func NewGoChannelPublisher(logger *slog.Logger) *GoChannelPublisher {
	return &GoChannelPublisher{
		pubsub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger)),
	}
}

func (p *GoChannelPublisher) Publish(ctx context.Context, topic string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe exposes the underlying subscriber so in-process consumers can
// attach to a topic.
func (p *GoChannelPublisher) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return p.pubsub.Subscribe(ctx, topic)
}

func (p *GoChannelPublisher) Close() error {
	return p.pubsub.Close()
}
