package secrets

import (
	"context"
	"fmt"
	"os"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/logging"
)

var (
	clientOnce           sync.Once
	secretsManagerClient *secretmanager.Client
	projectID            string
)

func client() *secretmanager.Client {
	clientOnce.Do(func() {
		ctx := context.Background()
		logger := logging.FromContext(ctx).Named("secrets.init")

		projectID = constants.ProjectID
		if id, exists := os.LookupEnv("PROJECT_ID"); exists {
			projectID = id
		}

		if projectID == "NOOP" {
			logger.Info("Mocking Secrets Manager")
			return
		}

		var err error
		secretsManagerClient, err = secretmanager.NewClient(ctx)
		if err != nil {
			logger.Fatalf("secretmanager.NewClient: %v", err)
		}
	})
	return secretsManagerClient
}

//Manager is an abstraction over Secret Manager
type Manager interface {
	Get(ctx context.Context, name string) ([]byte, error)
}

//Client Real Secrets Manager client.
type Client struct{}

//Get Gets latest value of specified secret.
func (c Client) Get(ctx context.Context, name string) ([]byte, error) {
	logger := logging.FromContext(ctx)

	sm := client()
	if sm == nil {
		return nil, fmt.Errorf("Secret Manager is mocked, cannot read '%v'", name)
	}

	logger.Debugf("Accessing secret '%v'", name)

	var req = secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%v/secrets/%v/versions/latest", projectID, name),
	}

	secret, err := sm.AccessSecretVersion(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("Failed to get secret '%v': %w", name, err)
	}

	return secret.GetPayload().GetData(), nil
}

//MockClient Secrets Manager client returning fixed values.
type MockClient struct {
	Values map[string]string
}

//Get Gets value of specified secret.
func (c MockClient) Get(_ context.Context, name string) ([]byte, error) {
	v, ok := c.Values[name]
	if !ok {
		return nil, fmt.Errorf("secret '%v' not found", name)
	}
	return []byte(v), nil
}
