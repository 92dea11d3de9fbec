package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/cryptolang/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// Importer bulk-indexes word documents, creating the index on first use.
type Importer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewImporter(ctx context.Context, config ClientConfig) (*Importer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	i := &Importer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := i.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return i, nil
}

func (i *Importer) EnsureIndex(ctx context.Context) error {
	exists, err := i.client.Indices.Exists(i.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", i.indexName)
		return nil
	}

	mappings := buildMapping()

	createRes, err := i.client.Indices.Create(i.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", i.indexName)
	return nil
}

func (i *Importer) Import(ctx context.Context, lang domain.Language, words []string) (int64, error) {
	if len(words) == 0 {
		return 0, nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         i.indexName,
		Client:        i.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		doc := newWordDocument(lang, w)

		body, err := json.Marshal(doc)
		if err != nil {
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID(),
			Body:       bytes.NewReader(body),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add word to bulk indexer", "error", err, "id", doc.ID())
		}
	}

	if err := bi.Close(ctx); err != nil {
		return 0, fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"language", lang,
		"successful", successful.Load(),
		"failed", failed.Load(),
		"index", i.indexName)

	if n := failed.Load(); n > 0 {
		return successful.Load(), fmt.Errorf("failed to index %d out of %d words", n, len(words))
	}

	return successful.Load(), nil
}
