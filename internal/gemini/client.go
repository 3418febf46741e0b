// Package gemini wraps the Gemini API client behind the three operations the
// CLI needs: configure a client with a credential, select a model by name and
// generate content from a prompt.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"
)

// Config configures a Client.
type Config struct {
	APIKey string
	// BaseURL overrides the Gemini API endpoint. Empty uses the library default.
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client is a configured Gemini API client. It holds no process-wide state;
// each Client carries its own credential.
type Client struct {
	genai *genai.Client
	log   *log.Logger
}

// NewClient creates a Client authenticated with cfg.APIKey.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/"
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{genai: gc, log: logger}, nil
}

// Model is a handle bound to one remote model.
type Model struct {
	client *Client
	name   string
}

// Name returns the model identifier the handle is bound to.
func (m *Model) Name() string { return m.name }

// Model looks up name and returns a handle for it. It fails when the model
// does not exist or is not available to the credential.
func (c *Client) Model(ctx context.Context, name string) (*Model, error) {
	info, err := c.genai.Models.Get(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	c.log.Debug("model available", "model", name, "display_name", info.DisplayName)
	return &Model{client: c, name: name}, nil
}

// SelectModel returns a handle for primary, or for fallback when primary is
// unavailable. Errors that do not indicate an unavailable model, such as a
// rejected credential, are returned without trying fallback.
func (c *Client) SelectModel(ctx context.Context, primary, fallback string) (*Model, error) {
	m, err := c.Model(ctx, primary)
	if err == nil {
		return m, nil
	}
	if fallback == "" || fallback == primary || !IsModelUnavailable(err) {
		return nil, err
	}

	c.log.Debug("primary model unavailable, using fallback", "primary", primary, "fallback", fallback, "err", err)
	return c.Model(ctx, fallback)
}

// Generate submits prompt and returns the response text.
func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.genai.Models.GenerateContent(ctx, m.name, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

// responseText concatenates the text parts of the first candidate, skipping
// thought summaries.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt was blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("response contained no candidates")
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", fmt.Errorf("response contained no text (finish reason: %s)", cand.FinishReason)
	}

	var sb strings.Builder
	var found bool
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		found = true
		sb.WriteString(part.Text)
	}
	if !found {
		return "", fmt.Errorf("response contained no text (finish reason: %s)", cand.FinishReason)
	}
	return sb.String(), nil
}
