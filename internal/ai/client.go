package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"labquest-backend/internal/metrics"
)

// Client talks to an OpenAI-compatible API: audio transcription plus chat
// completions with a JSON response format.
type Client struct {
	APIKey          string
	BaseURL         string
	Model           string
	TranscribeModel string
	HTTP            *http.Client
}

func New(apiKey, baseURL, model, transcribeModel string) *Client {
	return &Client{
		APIKey:          apiKey,
		BaseURL:         strings.TrimRight(baseURL, "/"),
		Model:           model,
		TranscribeModel: transcribeModel,
		HTTP:            http.DefaultClient,
	}
}

// APIError is returned for any non-2xx provider response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Transcribe uploads the audio file at path and returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, path string) (text string, err error) {
	defer func() { metrics.RecordProviderCall("transcribe", err) }()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.TranscribeModel); err != nil {
		return "", err
	}
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp struct {
		Text string `json:"text"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	return resp.Text, nil
}

// CompleteJSON sends instruction as the system message and input as the user
// message, asking for a JSON object back. It returns the raw message content.
func (c *Client) CompleteJSON(ctx context.Context, instruction, input string) (content string, err error) {
	defer func() { metrics.RecordProviderCall("complete", err) }()

	payload := map[string]any{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "system", "content": instruction},
			{"role": "user", "content": input},
		},
		"response_format": map[string]string{"type": "json_object"},
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("complete: provider did not return any choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{StatusCode: res.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
