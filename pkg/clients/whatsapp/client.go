// Package whatsapp is a thin client for the Meta WhatsApp Cloud API, used to
// push stock alerts to the clinic owner's phone.
package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the WhatsApp operations used by the application.
type Client interface {
	SendText(ctx context.Context, to, body string) error
}

// Options configures the Cloud API endpoint and credentials.
type Options struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient    *resty.Client
	phoneNumberID string
}

// NewClient builds a WhatsApp API client from the provided options.
func NewClient(opts Options) *APIClient {
	base := strings.TrimSuffix(opts.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(fmt.Sprintf("%s/%s", base, opts.APIVersion)).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", opts.AccessToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient:    restyClient,
		phoneNumberID: opts.PhoneNumberID,
	}
}

// apiError represents a WhatsApp Cloud API error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendText delivers a plain text message to the given phone number.
func (c *APIClient) SendText(ctx context.Context, to, body string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text": map[string]any{
			"body": body,
		},
	}

	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(apiErr).
		Post(fmt.Sprintf("%s/messages", c.phoneNumberID))
	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error.Message
		code := resp.StatusCode()
		if apiErr.Error.Code != 0 {
			code = apiErr.Error.Code
		}
		return fmt.Errorf("whatsapp api error: code=%d, message=%s", code, message)
	}

	return nil
}
