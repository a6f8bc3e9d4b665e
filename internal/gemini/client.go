// Package gemini provides the generative text capability behind shoreleave:
// plain completions for summaries, recommendations, and insights,
// web-grounded completions for discovery, and the similarity oracle used by
// catalog reconciliation.
package gemini

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config carries the Gemini API settings.
type Config struct {
	// APIKey is the Gemini API key.
	APIKey string

	// Model is the model id used for all calls. Defaults to DefaultModel.
	Model string
}

// Client is a thin wrapper over the GenAI SDK pinned to one model.
type Client struct {
	genai  *genai.Client
	model  string
	logger *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger overrides the logger used for model calls. Without it the
// client logs through the context logger (logging.Ctx).
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Gemini client for the Gemini API backend.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewConfigError("gemini", "GEMINI_API_KEY not set", errors.ErrAPIKeyRequired)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		genai: client,
		model: cfg.Model,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Model returns the model id this client is pinned to.
func (c *Client) Model() string {
	return c.model
}

// Complete runs a single completion and returns the response text.
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error) {
	return c.generate(ctx, system, user, maxTokens, temperature, false)
}

// CompleteGrounded runs a completion with Google Search grounding enabled,
// for prompts that need fresh web knowledge.
func (c *Client) CompleteGrounded(ctx context.Context, system, user string, maxTokens int32, temperature float32) (string, error) {
	return c.generate(ctx, system, user, maxTokens, temperature, true)
}

func (c *Client) generate(ctx context.Context, system, user string, maxTokens int32, temperature float32, grounded bool) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if grounded {
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	logger := c.logger
	if logger == nil {
		logger = logging.Ctx(ctx)
	}
	logger.Debug().
		Str("model", c.model).
		Bool("grounded", grounded).
		Int32("max_tokens", maxTokens).
		Msg("Generating content")

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(user), config)
	if err != nil {
		return "", &errors.APIError{Service: "gemini", Message: "content generation failed", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", errors.ErrEmptyResponse
	}
	return text, nil
}
