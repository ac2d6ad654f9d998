// Package duffel is a minimal client for the Duffel offer-request API.
package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"flightdesk-service/pkg/logger"
)

const offerRequestsPath = "/air/offer_requests"

// APIError is a non-2xx answer from the Duffel API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("duffel API returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the Duffel API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a Duffel client.
func NewClient(baseURL, token string, logger logger.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.duffel.com"
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type offerRequestEnvelope struct {
	Data OfferRequest `json:"data"`
}

type offerResponseEnvelope struct {
	Data struct {
		Offers []Offer `json:"offers"`
	} `json:"data"`
	Errors []struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"errors"`
}

// CreateOfferRequest creates an offer request with offers returned
// inline and returns the resulting offers. supplierTimeout bounds how
// long Duffel waits for airlines before answering.
func (c *Client) CreateOfferRequest(ctx context.Context, offerReq *OfferRequest, supplierTimeout time.Duration) ([]Offer, error) {
	body, err := json.Marshal(offerRequestEnvelope{Data: *offerReq})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer request: %w", err)
	}

	url := fmt.Sprintf("%s%s?return_offers=true&supplier_timeout=%s",
		c.baseURL, offerRequestsPath, strconv.FormatInt(supplierTimeout.Milliseconds(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Duffel-Version", "v2")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send offer request: %w", err)
	}
	defer resp.Body.Close()

	var envelope offerResponseEnvelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("failed to decode offer response: %w", decodeErr)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		message := "offer request failed"
		if len(envelope.Errors) > 0 {
			message = envelope.Errors[0].Message
			if message == "" {
				message = envelope.Errors[0].Title
			}
		}
		c.logger.Error("Duffel API error",
			"status", resp.StatusCode,
			"message", message)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return envelope.Data.Offers, nil
}
