// Package chat turns a session slot into an LLM prompt and returns the
// model's answer.
package chat

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/pagechat/internal/apperr"
	"github.com/sells-group/pagechat/internal/model"
)

// ErrorPrefix starts every answer that reports a provider failure.
const ErrorPrefix = "Error querying AI: "

// Options configures a Service.
type Options struct {
	Groq         Completer
	Anthropic    Completer
	DefaultModel string
	// AnthropicModels is consulted when the default model's provider is
	// not configured.
	AnthropicModels []string
	Temperature     float64
	MaxTokens       int64
}

// Service answers questions about scraped content.
type Service struct {
	completers   map[Provider]Completer
	defaultModel string
	temperature  float64
	maxTokens    int64
}

// NewService creates a Service. Nil completers leave their provider
// unavailable.
func NewService(opts Options) *Service {
	s := &Service{
		completers:   make(map[Provider]Completer, 2),
		defaultModel: opts.DefaultModel,
		temperature:  opts.Temperature,
		maxTokens:    opts.MaxTokens,
	}
	if s.defaultModel == "" {
		s.defaultModel = DefaultModel
	}
	if s.maxTokens <= 0 {
		s.maxTokens = 1024
	}
	if opts.Groq != nil {
		s.completers[ProviderGroq] = opts.Groq
	}
	if opts.Anthropic != nil {
		s.completers[ProviderAnthropic] = opts.Anthropic
	}

	if _, ok := s.completers[ProviderFor(s.defaultModel)]; !ok {
		available := Catalogue(opts.AnthropicModels, opts.Groq != nil, opts.Anthropic != nil)
		if len(available) > 0 {
			zap.L().Info("chat: default model unavailable, falling back",
				zap.String("configured", s.defaultModel),
				zap.String("model", available[0].ID),
			)
			s.defaultModel = available[0].ID
		}
	}
	return s
}

// DefaultModel reports the model used when a request names none.
func (s *Service) DefaultModel() string { return s.defaultModel }

// Ask sends question with the slot's context to modelID. Provider failures
// come back as an answer prefixed with ErrorPrefix, never as an error.
func (s *Service) Ask(ctx context.Context, question, modelID string, slot *model.Slot) string {
	if modelID == "" {
		modelID = s.defaultModel
	}
	provider := ProviderFor(modelID)

	completer, ok := s.completers[provider]
	if !ok {
		err := eris.Errorf("chat: no %s provider configured for model %s", provider, modelID)
		zap.L().Warn("chat: provider unavailable", zap.String("model", modelID), zap.Error(err))
		return ErrorPrefix + err.Error()
	}

	start := time.Now()
	answer, err := completer.Complete(ctx, Prompt{
		Model:       modelID,
		System:      SystemPrompt(BuildContext(slot)),
		Question:    question,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		zap.L().Warn("chat: completion failed",
			zap.String("provider", string(provider)),
			zap.String("model", modelID),
			zap.String("kind", string(apperr.KindOf(err))),
			zap.Error(err),
		)
		return ErrorPrefix + err.Error()
	}

	zap.L().Info("chat: answered",
		zap.String("provider", string(provider)),
		zap.String("model", modelID),
		zap.Duration("elapsed", time.Since(start)),
	)
	return answer
}
