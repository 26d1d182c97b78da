package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go-marketing-backend/config"
)

const relayEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// RelaySender delivers notifications through an EmailJS-compatible HTTP
// relay. The relay forwards templated messages to an email address without
// this process holding SMTP credentials.
type RelaySender struct {
	serviceID   string
	templateID  string
	publicKey   string
	accessToken string
	origin      string
	endpoint    string
	client      *http.Client
}

// NewRelaySender creates the relay transport from process configuration.
func NewRelaySender(cfg *config.Config) *RelaySender {
	return &RelaySender{
		serviceID:   cfg.RelayServiceID,
		templateID:  cfg.RelayTemplateID,
		publicKey:   cfg.RelayPublicKey,
		accessToken: cfg.RelayAccessToken,
		origin:      cfg.RelayOrigin,
		endpoint:    relayEndpoint,
		client:      &http.Client{Timeout: outboundTimeout},
	}
}

func (s *RelaySender) Name() string {
	return "relay"
}

// Configured reports whether the required credential subset is present.
func (s *RelaySender) Configured() bool {
	return s.serviceID != "" && s.templateID != "" && s.publicKey != ""
}

// Send posts the message to the relay endpoint. HTTP 200 and 202 count as
// success; anything else is a failure carrying the status and response body
// as diagnostic.
func (s *RelaySender) Send(ctx context.Context, msg Message) error {
	payload := map[string]any{
		"service_id":  s.serviceID,
		"template_id": s.templateID,
		"user_id":     s.publicKey,
		"template_params": map[string]string{
			"name":    msg.Name,
			"company": msg.Company,
			"service": msg.Service,
			"email":   msg.Email,
			"phone":   msg.Phone,
			"time":    msg.Time,
			"message": msg.Body,
		},
	}
	if s.accessToken != "" {
		payload["accessToken"] = s.accessToken
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.origin != "" {
		req.Header.Set("Origin", s.origin)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("relay send failed [%d]: %s", resp.StatusCode, string(detail))
}
