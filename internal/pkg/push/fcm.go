package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const fcmScope = "https://www.googleapis.com/auth/firebase.messaging"

// FCMSender delivers messages through Firebase Cloud Messaging (HTTP v1),
// authenticating with a service-account token source.
type FCMSender struct {
	projectID  string
	endpoint   string
	httpClient *http.Client
}

// NewFCMSender reads the service-account credentials file and builds an
// authenticated HTTP client for the FCM v1 send endpoint.
func NewFCMSender(credentialsFile, projectID string) (*FCMSender, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read FCM credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, fcmScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FCM credentials: %w", err)
	}

	client := oauth2.NewClient(context.Background(), conf.TokenSource(context.Background()))
	client.Timeout = 10 * time.Second

	return &FCMSender{
		projectID:  projectID,
		endpoint:   fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", projectID),
		httpClient: client,
	}, nil
}

type fcmMessage struct {
	Message struct {
		Token        string            `json:"token"`
		Notification map[string]string `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
	} `json:"message"`
}

type fcmErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Send delivers one message. A token the service reports UNREGISTERED (or
// plain 404) yields ErrUnregistered so the caller can prune it.
func (s *FCMSender) Send(ctx context.Context, msg Message) error {
	var payload fcmMessage
	payload.Message.Token = msg.Token
	payload.Message.Notification = map[string]string{
		"title": msg.Title,
		"body":  msg.Body,
	}
	payload.Message.Data = msg.Data

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal FCM payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build FCM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("FCM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var fcmErr fcmErrorResponse
	_ = json.Unmarshal(respBody, &fcmErr)

	if resp.StatusCode == http.StatusNotFound || fcmErr.Error.Status == "UNREGISTERED" {
		return ErrUnregistered
	}

	if fcmErr.Error.Message != "" {
		return fmt.Errorf("FCM send failed (%d): %s", resp.StatusCode, fcmErr.Error.Message)
	}
	return fmt.Errorf("FCM send failed with status %d", resp.StatusCode)
}
