package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Client talks to the payment-gateway collect API. Every request carries a
// JWT-signed copy of its own fields; the gateway validates the signature
// against the shared API key.
type Client struct {
	apiURL     string
	pgKey      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, pgKey, apiKey string) *Client {
	return &Client{
		apiURL:     apiURL,
		pgKey:      pgKey,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type collectRequest struct {
	PgKey       string  `json:"pg_key"`
	SchoolID    string  `json:"school_id"`
	OrderID     string  `json:"order_id"`
	OrderAmount float64 `json:"order_amount"`
	Payload     string  `json:"payload"`
}

type collectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// CreateCollectRequest registers the order with the gateway and returns
// the hosted payment link.
func (c *Client) CreateCollectRequest(orderID, schoolID string, amount float64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"orderId":  orderID,
		"amount":   amount,
		"schoolId": schoolID,
	})
	signedPayload, err := token.SignedString([]byte(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("sign collect payload: %w", err)
	}

	body, err := json.Marshal(collectRequest{
		PgKey:       c.pgKey,
		SchoolID:    schoolID,
		OrderID:     orderID,
		OrderAmount: amount,
		Payload:     signedPayload,
	})
	if err != nil {
		return "", fmt.Errorf("marshal collect request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("build collect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	var collect collectResponse
	if err := json.Unmarshal(respBody, &collect); err != nil {
		return "", fmt.Errorf("parse gateway response: %w", err)
	}
	if collect.RedirectURL == "" {
		return "", fmt.Errorf("gateway response missing redirect_url")
	}
	return collect.RedirectURL, nil
}
