package chat

import (
	"fmt"
	"strings"

	"github.com/sells-group/pagechat/internal/extract"
	"github.com/sells-group/pagechat/internal/model"
)

const (
	// PageContextCap bounds page content placed in the prompt.
	PageContextCap = 10000
	// SearchContextHits is how many search hits reach the prompt.
	SearchContextHits = 3
)

const systemPreamble = "You are a helpful assistant that answers questions based on scraped web content."

const systemInstructions = `Instructions:
- Answer questions based on the provided web content
- Be concise and accurate
- Cite the source when relevant
- If the answer is not in the provided content, say so`

// BuildContext renders the session slot as prompt text. A nil slot yields "".
func BuildContext(slot *model.Slot) string {
	if slot == nil {
		return ""
	}
	switch slot.Kind {
	case model.SlotKindPage:
		if slot.Page == nil {
			return ""
		}
		return pageContext(*slot.Page)
	case model.SlotKindSearch:
		if slot.Search == nil {
			return ""
		}
		return searchContext(*slot.Search)
	default:
		return ""
	}
}

func pageContext(p model.ExtractionResult) string {
	return fmt.Sprintf("Website: %s\nURL: %s\n\nContent:\n%s",
		p.Title, p.URL, extract.Cap(p.Content, PageContextCap))
}

func searchContext(s model.SearchResult) string {
	query := s.Query
	if query == "" {
		query = "N/A"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search Results for: %s\n\n", query)
	for i, hit := range s.Results {
		if i == SearchContextHits {
			break
		}
		fmt.Fprintf(&sb, "\n--- Result %d: %s ---\nURL: %s\n%s\n", i+1, hit.Title, hit.URL, hit.Content)
	}
	return sb.String()
}

// SystemPrompt wraps the rendered context with the assistant instructions.
func SystemPrompt(context string) string {
	return systemPreamble + "\n\n" + context + "\n\n" + systemInstructions
}
