// Package companion talks to the AI companion service, an internal HTTP
// endpoint that wraps the hosted LLM. The backend never speaks to the LLM
// vendor directly.
package companion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 20 * time.Second}

// Client issues chat requests against a companion service base URL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client for the given base URL. A nil-safe default HTTP
// client with a timeout is used.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: httpClient}
}

type chatRequest struct {
	UserID  uint          `json:"user_id"`
	Message string        `json:"message"`
	History []HistoryTurn `json:"history,omitempty"`
}

// HistoryTurn is one prior exchange sent along for conversational context.
type HistoryTurn struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat sends the user's message plus recent history and returns the
// companion's reply. Any non-200 status is an error.
func (cl *Client) Chat(userID uint, message string, history []HistoryTurn) (string, error) {
	if cl.BaseURL == "" {
		return "", fmt.Errorf("companion service URL not configured")
	}

	reqBody, err := json.Marshal(chatRequest{
		UserID:  userID,
		Message: message,
		History: history,
	})
	if err != nil {
		return "", err
	}

	resp, err := cl.HTTP.Post(cl.BaseURL+"/chat", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("companion service returned status %s", resp.Status)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	return chatResp.Reply, nil
}
