package service

import (
	"encoding/json"
	"time"

	"deeplinkr/internal/app/model"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ClickPublisher publishes click events to NATS JetStream. Publishing is
// best-effort analytics; the link's click counter is maintained synchronously
// by the resolver and does not depend on the broker.
type ClickPublisher struct {
	js nats.JetStreamContext
}

// NewClickPublisher creates a new click event publisher.
func NewClickPublisher(js nats.JetStreamContext) *ClickPublisher {
	return &ClickPublisher{js: js}
}

// Publish emits one click event to the stream.
func (p *ClickPublisher) Publish(linkCode, ip, userAgent string, device model.Device) error {
	event := model.ClickEvent{
		ID:        uuid.New().String(),
		LinkCode:  linkCode,
		IP:        ip,
		UserAgent: userAgent,
		Device:    device,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.js.Publish(model.ClickStreamSubject, data)
	return err
}
