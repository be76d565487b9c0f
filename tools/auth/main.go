// Command auth prints an ID token of given user, for calling the functions by hand.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/butterflysteps/backend/internal/auth"
	"github.com/butterflysteps/backend/internal/logging"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
)

const verifyCustomTokenURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithCustomToken?key="

var (
	uid             = flag.String("uid", "", "UID to mint the token for")
	projectAPIToken = flag.String("at", "", "project API token - if not provided, value from env variable PROJECTAPIKEY is used")
)

type verificationResponse struct {
	IDToken string `json:"idToken"`
}

// exchange trades a custom token for an ID token
func exchange(ctx context.Context, client *http.Client, url string, customToken string) (string, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"token":             customToken,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("verification request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("verification request: status %v", resp.StatusCode)
	}

	var r verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("response mismatch: %w", err)
	}
	if r.IDToken == "" {
		return "", fmt.Errorf("response contains no ID token")
	}

	return r.IDToken, nil
}

func main() {
	flag.Parse()

	ctx := context.Background()
	logger := logging.FromContext(ctx).Named("auth")

	if *uid == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *projectAPIToken == "" {
		*projectAPIToken = os.Getenv("PROJECTAPIKEY")
	}

	customToken, err := auth.Client{}.CustomToken(ctx, *uid)
	if err != nil {
		logger.Fatalf("Could not mint custom token: %v", err)
	}

	client := httputils.NewThrottlingAwareClient(&http.Client{}, logger.Debugf)

	token, err := exchange(ctx, client, verifyCustomTokenURL+*projectAPIToken, customToken)
	if err != nil {
		logger.Fatalf("Could not get ID token: %v", err)
	}

	fmt.Println(token)
}
