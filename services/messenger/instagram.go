package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"innkeeper/config"
	"innkeeper/models"
)

// Messenger is the outbound reply transport.
type Messenger interface {
	SendMessage(ctx context.Context, recipientID, text string) error
}

// InstagramClient talks to the Graph API messaging endpoints.
type InstagramClient struct {
	accessToken string
	verifyToken string
	pageID      string
	graphURL    string
	httpClient  *http.Client
}

// NewInstagramClient builds a client from loaded configuration.
func NewInstagramClient() *InstagramClient {
	cfg := config.AppConfig
	return &InstagramClient{
		accessToken: cfg.InstagramAccessToken,
		verifyToken: cfg.InstagramVerifyToken,
		pageID:      cfg.InstagramPageID,
		graphURL:    cfg.InstagramGraphURL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

type sendMessageRequest struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
	AccessToken string `json:"access_token"`
}

// SendMessage delivers a DM to an Instagram user.
func (c *InstagramClient) SendMessage(ctx context.Context, recipientID, text string) error {
	var payload sendMessageRequest
	payload.Recipient.ID = recipientID
	payload.Message.Text = text
	payload.AccessToken = c.accessToken

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.graphURL, c.pageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Graph API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph API returned status %d", resp.StatusCode)
	}
	return nil
}

// VerifyWebhook answers the platform's subscription handshake: the
// challenge is echoed only for a subscribe request carrying our token.
func (c *InstagramClient) VerifyWebhook(mode, token, challenge string) (string, bool) {
	if mode == "subscribe" && token != "" && token == c.verifyToken {
		return challenge, true
	}
	return "", false
}

// webhookPayload mirrors the messaging webhook body shape.
type webhookPayload struct {
	Entry []struct {
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Timestamp int64 `json:"timestamp"` // epoch millis
			Message   struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// ParseWebhook extracts inbound text messages from a webhook body. Entries
// without a sender or text (delivery receipts, reactions) are skipped.
func ParseWebhook(body []byte) ([]models.InboundMessage, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	var msgs []models.InboundMessage
	for _, entry := range payload.Entry {
		for _, m := range entry.Messaging {
			if m.Sender.ID == "" || m.Message.Text == "" {
				continue
			}
			ts := time.Now().UTC()
			if m.Timestamp > 0 {
				ts = time.UnixMilli(m.Timestamp).UTC()
			}
			msgs = append(msgs, models.InboundMessage{
				UserID:    m.Sender.ID,
				Text:      m.Message.Text,
				Timestamp: ts,
			})
		}
	}
	return msgs, nil
}
