package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/cryptolang/internal/dictionary"
	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

const DefaultPageSize = 5000

// Loader pages through every word document of an index with search_after.
type Loader struct {
	client    *elasticsearch.TypedClient
	indexName string
	pageSize  int
}

func NewLoader(config ClientConfig) (*Loader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Loader{
		client:    client,
		indexName: config.IndexName,
		pageSize:  DefaultPageSize,
	}, nil
}

func (l *Loader) Load(ctx context.Context) (dictionary.Words, error) {
	slog.Info("Loading dictionaries from Elasticsearch", "index", l.indexName, "page_size", l.pageSize)

	words := make(dictionary.Words)
	var after []types.FieldValue
	pages := 0

	for {
		hits, err := l.page(ctx, after)
		if err != nil {
			return nil, err
		}
		pages++

		for _, hit := range hits {
			var doc WordDocument
			if err := json.Unmarshal(hit.Source_, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal word document: %w", err)
			}
			lang, err := domain.ParseLanguage(doc.Language)
			if err != nil {
				continue
			}
			words[lang] = append(words[lang], doc.Word)
		}

		if len(hits) < l.pageSize {
			break
		}
		after = hits[len(hits)-1].Sort
	}

	slog.Info("Es dictionary pages fetched", "pages", pages, "index", l.indexName)
	return words, nil
}

func (l *Loader) page(ctx context.Context, after []types.FieldValue) ([]types.Hit, error) {
	asc := sortorder.Asc

	req := l.client.Search().
		Index(l.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(l.pageSize).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"language": {Order: &asc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"word": {Order: &asc},
				},
			},
		)

	if len(after) > 0 {
		req = req.SearchAfter(after...)
	}

	res, err := req.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch dictionary query failed", "error", err, "index", l.indexName)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	return res.Hits.Hits, nil
}
