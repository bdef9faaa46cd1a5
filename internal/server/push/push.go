// Package push isolates the web-push capability. The moderation core never
// depends on it; the server only constructs a Notifier at startup.
package push

import (
	"context"
	"errors"
	"sync"
)

// ErrNotConfigured is returned when VAPID credentials are missing.
var ErrNotConfigured = errors.New("push: VAPID keys are not configured")

// Keys is a VAPID key pair.
type Keys struct {
	PublicKey  string
	PrivateKey string
}

// Validate reports ErrNotConfigured unless both halves are present.
func (k Keys) Validate() error {
	if k.PublicKey == "" || k.PrivateKey == "" {
		return ErrNotConfigured
	}
	return nil
}

// Message is a notification addressed to one subscription endpoint.
type Message struct {
	Endpoint string
	Title    string
	Body     string
}

// Notifier delivers push messages.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
	PublicKey() string
}

// Discard accepts messages and keeps them in memory without delivering.
// Delivery over the web-push protocol is not implemented.
type Discard struct {
	keys Keys

	mu   sync.Mutex
	sent []Message
}

// NewDiscard checks keys and returns a Notifier that never delivers.
func NewDiscard(keys Keys) (*Discard, error) {
	if err := keys.Validate(); err != nil {
		return nil, err
	}
	return &Discard{keys: keys}, nil
}

func (d *Discard) Notify(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msg)
	return nil
}

func (d *Discard) PublicKey() string {
	return d.keys.PublicKey
}

// Sent returns a copy of the messages seen so far.
func (d *Discard) Sent() []Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Message, len(d.sent))
	copy(out, d.sent)
	return out
}
