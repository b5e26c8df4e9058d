package chat

import (
	"context"

	"github.com/sells-group/pagechat/internal/apperr"
	"github.com/sells-group/pagechat/pkg/anthropic"
	"github.com/sells-group/pagechat/pkg/groq"
)

// Prompt is one question against a rendered context.
type Prompt struct {
	Model       string
	System      string
	Question    string
	Temperature float64
	MaxTokens   int64
}

// Completer answers a Prompt with a single completion.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// GroqCompleter adapts a groq.Client.
type GroqCompleter struct {
	Client groq.Client
}

func (g GroqCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	temp := p.Temperature
	resp, err := g.Client.Complete(ctx, groq.CompletionRequest{
		Model:       p.Model,
		System:      p.System,
		User:        p.Question,
		Temperature: &temp,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil {
		return "", apperr.ExternalAPIFailed(err, "chat: groq completion")
	}
	return resp.Content, nil
}

// AnthropicCompleter adapts an anthropic.Client and logs token cost.
type AnthropicCompleter struct {
	Client anthropic.Client
}

func (a AnthropicCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	temp := p.Temperature
	resp, err := a.Client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       p.Model,
		MaxTokens:   p.MaxTokens,
		System:      p.System,
		Messages:    []anthropic.Message{{Role: "user", Content: p.Question}},
		Temperature: &temp,
	})
	if err != nil {
		return "", apperr.ExternalAPIFailed(err, "chat: anthropic completion")
	}
	resp.Usage.LogCost(p.Model)
	return resp.Text(), nil
}
