package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/pagechat/internal/model"
)

func TestBuildContext_Page(t *testing.T) {
	slot := model.NewPageSlot(model.ExtractionResult{
		Success: true,
		URL:     "https://example.com",
		Title:   "Example",
		Content: "Hello world",
	})

	assert.Equal(t, "Website: Example\nURL: https://example.com\n\nContent:\nHello world", BuildContext(slot))
}

func TestBuildContext_PageCapsContent(t *testing.T) {
	slot := model.NewPageSlot(model.ExtractionResult{
		Success: true,
		Content: strings.Repeat("a", PageContextCap+500),
	})

	ctx := BuildContext(slot)
	body := ctx[strings.Index(ctx, "Content:\n")+len("Content:\n"):]
	assert.Len(t, body, PageContextCap)
}

func TestBuildContext_Search(t *testing.T) {
	slot := model.NewSearchSlot(model.SearchResult{
		Success: true,
		Query:   "golang",
		Results: []model.SearchHit{
			{Title: "A", URL: "https://a.example", Content: "alpha"},
			{Title: "B", URL: "https://b.example", Content: "beta"},
			{Title: "C", URL: "https://c.example", Content: "gamma"},
			{Title: "D", URL: "https://d.example", Content: "delta"},
		},
	})

	want := "Search Results for: golang\n\n" +
		"\n--- Result 1: A ---\nURL: https://a.example\nalpha\n" +
		"\n--- Result 2: B ---\nURL: https://b.example\nbeta\n" +
		"\n--- Result 3: C ---\nURL: https://c.example\ngamma\n"
	assert.Equal(t, want, BuildContext(slot))
}

func TestBuildContext_SearchNoQuery(t *testing.T) {
	slot := model.NewSearchSlot(model.SearchResult{Success: true, Results: []model.SearchHit{}})
	assert.Equal(t, "Search Results for: N/A\n\n", BuildContext(slot))
}

func TestBuildContext_Empty(t *testing.T) {
	assert.Empty(t, BuildContext(nil))
	assert.Empty(t, BuildContext(&model.Slot{Kind: model.SlotKindPage}))
	assert.Empty(t, BuildContext(&model.Slot{Kind: "other"}))
}

func TestSystemPrompt(t *testing.T) {
	p := SystemPrompt("Website: X")
	assert.True(t, strings.HasPrefix(p, "You are a helpful assistant that answers questions based on scraped web content.\n\nWebsite: X\n\n"))
	assert.Contains(t, p, "- Cite the source when relevant")
	assert.True(t, strings.HasSuffix(p, "say so"))
}
