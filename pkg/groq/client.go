// Package groq wraps Groq's OpenAI-compatible chat completions API.
package groq

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Client defines the Groq operations used for page Q&A.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is a single-turn chat completion with a system prompt.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature *float64
	MaxTokens   int64
}

// CompletionResponse carries the first choice of a chat completion.
type CompletionResponse struct {
	ID           string
	Model        string
	Content      string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Option configures the client.
type Option func(*clientOpts)

type clientOpts struct {
	baseURL string
	extra   []option.RequestOption
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) Option {
	return func(o *clientOpts) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithRequestOptions passes raw SDK options through.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(o *clientOpts) {
		o.extra = append(o.extra, opts...)
	}
}

type sdkClient struct {
	client openai.Client
}

// NewClient creates a Groq client backed by openai-go.
func NewClient(apiKey string, opts ...Option) Client {
	o := clientOpts{baseURL: DefaultBaseURL}
	for _, fn := range opts {
		fn(&o)
	}
	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(o.baseURL),
	}, o.extra...)
	return &sdkClient{client: openai.NewClient(reqOpts...)}
}

func (c *sdkClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, eris.Wrap(err, "groq: chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, eris.New("groq: chat completion returned no choices")
	}

	out := &CompletionResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      resp.Choices[0].Message.Content,
		FinishReason: resp.Choices[0].FinishReason,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	zap.L().Debug("groq: completion",
		zap.String("model", out.Model),
		zap.String("finish_reason", out.FinishReason),
		zap.Int64("prompt_tokens", out.Usage.PromptTokens),
		zap.Int64("completion_tokens", out.Usage.CompletionTokens),
	)

	return out, nil
}
