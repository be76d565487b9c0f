package pubsub

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/logging"
)

var (
	clientOnce   sync.Once
	pubSubClient *pubsub.Client
)

// Message is the payload of a Pub/Sub event.
type Message struct {
	Data []byte `json:"data"`
}

func client() *pubsub.Client {
	clientOnce.Do(func() {
		ctx := context.Background()
		logger := logging.FromContext(ctx).Named("pubsub.init")

		projectID := constants.ProjectID
		if id, exists := os.LookupEnv("PROJECT_ID"); exists {
			projectID = id
		}

		if projectID == "NOOP" {
			logger.Info("Mocking PubSub")
			return
		}

		var err error
		pubSubClient, err = pubsub.NewClient(ctx, projectID)
		if err != nil {
			logger.Fatalf("pubsub.NewClient: %v", err)
		}
	})
	return pubSubClient
}

//EventPublisher is an abstraction over PubSub
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msg interface{}) error
}

//Client Real PubSub client.
type Client struct{}

//Publish Publish message to some topic and wait for the server to accept it.
func (c Client) Publish(ctx context.Context, topic string, msg interface{}) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ps := client()
	if ps == nil {
		logging.FromContext(ctx).Debugf("PubSub mocked, dropping message for %v", topic)
		return nil
	}

	result := ps.Topic(topic).Publish(ctx, &pubsub.Message{Data: payload})

	// The Get method blocks until a server-generated ID or
	// an error is returned for the published message.
	_, err = result.Get(ctx)
	return err
}

//Published Message captured by MockClient.
type Published struct {
	Topic   string
	Payload []byte
}

//MockClient PubSub client remembering what was published.
type MockClient struct {
	mu       sync.Mutex
	messages []Published
}

//Publish Records the message.
func (c *MockClient) Publish(_ context.Context, topic string, msg interface{}) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, Published{Topic: topic, Payload: payload})
	return nil
}

//Messages Messages published so far to given topic.
func (c *MockClient) Messages(topic string) []Published {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []Published
	for _, m := range c.messages {
		if m.Topic == topic {
			result = append(result, m)
		}
	}
	return result
}

//DecodeJSONEvent Decodes JSON payload of the event into dst.
func DecodeJSONEvent(m Message, dst interface{}) error {
	return json.Unmarshal(m.Data, dst)
}
