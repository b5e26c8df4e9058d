package chat

import (
	"strings"

	"github.com/sells-group/pagechat/internal/model"
)

// Provider names a chat backend.
type Provider string

const (
	ProviderGroq      Provider = "groq"
	ProviderAnthropic Provider = "anthropic"
)

// DefaultModel is used when a request names no model.
const DefaultModel = "mixtral-8x7b-32768"

// GroqModels is the fixed Groq catalogue offered to clients.
var GroqModels = []model.ModelDescriptor{
	{ID: "mixtral-8x7b-32768", Name: "Mixtral 8x7B (Fast & Balanced)"},
	{ID: "llama-3.3-70b-versatile", Name: "Llama 3.3 70B (Most Capable)"},
	{ID: "llama-3.1-8b-instant", Name: "Llama 3.1 8B (Fastest)"},
	{ID: "gemma2-9b-it", Name: "Gemma 2 9B (Efficient)"},
}

var claudeNames = map[string]string{
	"claude-haiku-4-5-20251001":  "Claude Haiku 4.5",
	"claude-sonnet-4-5-20250929": "Claude Sonnet 4.5",
}

// ProviderFor routes a model id. Claude models go to Anthropic, everything
// else to Groq.
func ProviderFor(modelID string) Provider {
	if strings.HasPrefix(modelID, "claude-") {
		return ProviderAnthropic
	}
	return ProviderGroq
}

// Catalogue lists the models a client may pick. Each provider's models are
// listed only when that provider is configured.
func Catalogue(anthropicModels []string, withGroq, withAnthropic bool) []model.ModelDescriptor {
	out := make([]model.ModelDescriptor, 0, len(GroqModels)+len(anthropicModels))
	if withGroq {
		out = append(out, GroqModels...)
	}
	if !withAnthropic {
		return out
	}
	for _, id := range anthropicModels {
		name, ok := claudeNames[id]
		if !ok {
			name = id
		}
		out = append(out, model.ModelDescriptor{ID: id, Name: name})
	}
	return out
}
