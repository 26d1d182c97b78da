// Package crm implements a best-effort client for a LeadConnector-style CRM
// API: create a contact from a form submission and attach a follow-up task.
// Nothing here may ever affect the HTTP response already sent to the form
// submitter; failures are logged and swallowed by the workflow entry point.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-marketing-backend/config"
	"go-marketing-backend/pkg/logger"
)

const apiVersion = "2021-07-28"

// ContactInput carries the submission fields the CRM cares about.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
}

// Client talks to the CRM REST API.
type Client struct {
	apiKey     string
	locationID string
	baseURL    string
	client     *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:     cfg.CRMAPIKey,
		locationID: cfg.CRMLocationID,
		baseURL:    cfg.CRMBaseURL,
		client:     &http.Client{Timeout: 20 * time.Second},
	}
}

// Configured reports whether CRM credentials are present. An unconfigured
// client skips the workflow entirely; this is informational, not an error.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.locationID != ""
}

// CreateContact creates a CRM contact and returns its identifier.
func (c *Client) CreateContact(ctx context.Context, in ContactInput) (string, error) {
	payload := map[string]any{
		"locationId": c.locationID,
		"firstName":  in.FirstName,
		"lastName":   in.LastName,
		"email":      in.Email,
		"source":     "Website",
		"tags":       []string{"Website Contact"},
	}
	if in.Phone != "" {
		payload["phone"] = in.Phone
	}
	if in.Company != "" {
		payload["companyName"] = in.Company
	}

	body, err := c.post(ctx, "/contacts/", payload)
	if err != nil {
		return "", err
	}

	// The API nests the id under "contact" but some endpoints return it flat.
	var parsed struct {
		ID      string `json:"id"`
		Contact struct {
			ID string `json:"id"`
		} `json:"contact"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode contact response: %w", err)
	}
	if parsed.Contact.ID != "" {
		return parsed.Contact.ID, nil
	}
	return parsed.ID, nil
}

// CreateTask attaches a follow-up task to a contact, due three days out.
func (c *Client) CreateTask(ctx context.Context, contactID, title, description string) error {
	payload := map[string]any{
		"title":       title,
		"description": description,
		"dueDate":     time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
		"completed":   false,
	}
	_, err := c.post(ctx, "/contacts/"+contactID+"/tasks", payload)
	return err
}

func (c *Client) post(ctx context.Context, path string, payload map[string]any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode crm payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build crm request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Version", apiVersion)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("crm call failed [%d]: %s", resp.StatusCode, string(data))
	}
	return data, nil
}

// FollowUp runs the whole best-effort enrichment workflow: create the
// contact, then a follow-up task referencing it. Every failure is logged and
// swallowed.
func (c *Client) FollowUp(ctx context.Context, in ContactInput, service string) {
	if !c.Configured() {
		logger.Log.Info("CRM not configured, skipping contact creation")
		return
	}

	contactID, err := c.CreateContact(ctx, in)
	if err != nil {
		logger.Log.Error("CRM contact creation failed", "error", err)
		return
	}
	if contactID == "" {
		logger.Log.Warn("CRM contact created without an id, skipping follow-up task")
		return
	}
	logger.Log.Info("CRM contact created", "contact_id", contactID)

	title := fmt.Sprintf("Follow up: %s %s", in.FirstName, in.LastName)
	description := fmt.Sprintf("Service interest: %s", service)
	if err := c.CreateTask(ctx, contactID, title, description); err != nil {
		logger.Log.Error("CRM task creation failed", "contact_id", contactID, "error", err)
		return
	}
	logger.Log.Info("CRM follow-up task created", "contact_id", contactID)
}
