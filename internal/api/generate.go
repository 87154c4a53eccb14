package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/geminirepl/internal/errors"
	"github.com/diogo/geminirepl/internal/models"
)

// maxErrorBody limits how much of an error response is kept for diagnostics
const maxErrorBody = 4096

// Request/response schema for the generateContent endpoint.
type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// Send relays one user message with the full transcript as context and
// returns the assistant's reply. On success the user turn and the reply
// are appended to the transcript; on failure the transcript is untouched.
func (c *Client) Send(ctx context.Context, transcript *models.Transcript, userText string) (string, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	userTurn := models.NewUserTurn(userText)

	text, err := c.generate(ctx, append(transcript.Snapshot(), userTurn))
	if err != nil {
		return "", err
	}

	transcript.Append(userTurn)
	transcript.Append(models.NewModelTurn(text))
	return text, nil
}

// generate performs the HTTP request and extracts the reply text.
func (c *Client) generate(ctx context.Context, turns []models.Turn) (string, error) {
	endpoint := c.baseURL + models.GenerateContentPath(c.model)

	payload, err := json.Marshal(buildRequest(turns))
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels in a header so it never appears in URLs or error text.
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("generate content", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", apierrors.NewNetworkError("read response", endpoint, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", apierrors.NewAuthError(resp.StatusCode, providerMessage(body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := providerMessage(body)
		if msg == "" {
			msg = "generate content failed"
		}
		return "", apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, msg, truncate(string(body), maxErrorBody))
	}

	return parseResponse(body)
}

// buildRequest serializes the turn history into the provider schema.
func buildRequest(turns []models.Turn) generateRequest {
	contents := make([]content, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, content{
			Role:  string(turn.Role),
			Parts: []part{{Text: turn.Text}},
		})
	}
	return generateRequest{Contents: contents}
}

// parseResponse decodes the response body in a single step and extracts
// the first candidate's text. Any missing piece is a ParseError.
func parseResponse(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", apierrors.NewParseError("empty response body", "")
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", apierrors.NewParseError(fmt.Sprintf("malformed JSON: %v", err), "")
	}

	if len(decoded.Candidates) == 0 {
		return "", apierrors.NewParseError(apierrors.ErrNoContent.Error(), "candidates")
	}

	var sb strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	text := sb.String()
	if text == "" {
		return "", apierrors.NewParseError(apierrors.ErrNoContent.Error(), "candidates.0.content.parts")
	}

	return text, nil
}

// providerMessage pulls error.message out of an error payload, if present.
func providerMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return gjson.GetBytes(body, "error.message").String()
}

// truncate caps s at n bytes, backing up to a rune boundary so the
// result is always valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
