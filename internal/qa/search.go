package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// ElasticSearcher backs the similarity step with a full-text index. The
// index holds one document per curated entry with question, answer and
// category fields.
type ElasticSearcher struct {
	client *elasticsearch.Client
	index  string
}

// NewElasticSearcher creates a searcher over the given index.
func NewElasticSearcher(client *elasticsearch.Client, index string) *ElasticSearcher {
	return &ElasticSearcher{client: client, index: index}
}

// SearchSimilar runs a fuzzy match on the stored questions, best hits first.
func (s *ElasticSearcher) SearchSimilar(ctx context.Context, question string) ([]models.QAEntry, error) {
	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"question": map[string]interface{}{
					"query":     question,
					"fuzziness": "AUTO",
				},
			},
		},
	}

	body, _ := json.Marshal(queryBody)
	size := 5

	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  strings.NewReader(string(body)),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, stderrors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, stderrors.NewSearchQueryFailedError(fmt.Errorf("search returned %s", res.Status()))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.QAEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, stderrors.NewSearchQueryFailedError(err)
	}

	entries := make([]models.QAEntry, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		entries = append(entries, hit.Source)
	}
	return entries, nil
}

// Index writes one entry into the search index, keyed by its row id.
func (s *ElasticSearcher) Index(ctx context.Context, entry *models.QAEntry) error {
	body, _ := json.Marshal(entry)

	req := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: fmt.Sprintf("%d", entry.ID),
		Body:       strings.NewReader(string(body)),
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return stderrors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return stderrors.NewSearchQueryFailedError(fmt.Errorf("index returned %s", res.Status()))
	}
	return nil
}
