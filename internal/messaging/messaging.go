package messaging

import (
	"context"
	"sync"

	"firebase.google.com/go/v4/messaging"
	"github.com/butterflysteps/backend/internal/firebase"
	"github.com/butterflysteps/backend/internal/logging"
)

//PushSender Interface for FB messaging client
type PushSender interface {
	Send(ctx context.Context, msg *messaging.Message) error
}

//Client Real implementation of FB messaging client
type Client struct{}

//Send Sends the message
func (c Client) Send(ctx context.Context, msg *messaging.Message) error {
	fcm := firebase.Messaging()
	if fcm == nil {
		logging.FromContext(ctx).Debugf("Messaging mocked, dropping push for %v", msg.Topic)
		return nil
	}
	_, err := fcm.Send(ctx, msg)
	return err
}

//MockClient Collects messages instead of sending them.
type MockClient struct {
	Err error

	mu   sync.Mutex
	sent []*messaging.Message
}

//Send Records the message and returns Err.
func (c *MockClient) Send(_ context.Context, msg *messaging.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, msg)
	return c.Err
}

//Sent Messages passed to Send so far.
func (c *MockClient) Sent() []*messaging.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*messaging.Message(nil), c.sent...)
}
