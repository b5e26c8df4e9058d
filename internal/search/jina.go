package search

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/pagechat/pkg/jina"
)

// Jina adapts the Jina search API to Provider.
type Jina struct {
	client jina.Client
}

// NewJina creates a Jina provider.
func NewJina(client jina.Client) *Jina {
	return &Jina{client: client}
}

func (j *Jina) Name() string { return "jina" }

func (j *Jina) Search(ctx context.Context, query string, n int) ([]Hit, error) {
	resp, err := j.client.Search(ctx, jina.SearchRequest{Query: query, Num: n})
	if err != nil {
		return nil, eris.Wrap(err, "jina: search")
	}
	hits := []Hit{}
	for _, r := range resp.Data {
		if len(hits) == n {
			break
		}
		if r.URL == "" {
			continue
		}
		hits = append(hits, Hit{Title: r.Title, URL: r.URL})
	}
	return hits, nil
}
