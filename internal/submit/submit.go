// Package submit hands finished applications to whoever processes them.
package submit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chamberhq/join/internal/logger"
	natsutil "github.com/chamberhq/join/internal/nats"
	"github.com/chamberhq/join/internal/registration"
	"github.com/nats-io/nats.go"
)

// Submitter delivers a completed application.
type Submitter interface {
	Submit(ctx context.Context, app registration.Application) error
}

// Discard drops applications after logging them. Used when no broker is
// configured.
type Discard struct{}

// Submit implements Submitter.
func (Discard) Submit(_ context.Context, app registration.Application) error {
	logger.Info("No broker configured, discarding application %s (%s)", app.ID, app.Reference)
	return nil
}

// Publisher publishes applications as JSON on NATS.
type Publisher struct {
	conn   *nats.Conn
	prefix string
}

// NewPublisher creates a Publisher on an existing connection.
func NewPublisher(conn *nats.Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: prefix}
}

// Submit publishes app on <prefix>.<reference> and flushes so the caller
// learns about connection failures.
func (p *Publisher) Submit(ctx context.Context, app registration.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("marshaling application: %w", err)
	}

	subject := natsutil.SubjectForApplication(p.prefix, app.Reference)
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set("Join-Application-Id", app.ID)

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publishing application: %w", err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flushing application: %w", err)
	}

	logger.Info("Published application %s on %s", app.ID, subject)
	return nil
}

// Watch subscribes to every application under prefix and calls handle for
// each one that decodes. Undecodable messages are logged and skipped.
func Watch(conn *nats.Conn, prefix string, handle func(registration.Application)) (*nats.Subscription, error) {
	sub, err := conn.Subscribe(natsutil.SubjectForAll(prefix), func(m *nats.Msg) {
		var app registration.Application
		if err := json.Unmarshal(m.Data, &app); err != nil {
			logger.Warn("Skipping malformed application on %s: %v", m.Subject, err)
			return
		}
		handle(app)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to applications: %w", err)
	}
	return sub, nil
}
