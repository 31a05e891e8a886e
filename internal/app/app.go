// Package app wires dataset loading into corpora for the analysis binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jdpolicano/go-corpustat/internal/config"
	"github.com/jdpolicano/go-corpustat/internal/corpus"
	"github.com/jdpolicano/go-corpustat/internal/source"
	"github.com/jdpolicano/go-corpustat/internal/text"
)

// ErrorNoSource is returned when a dataset has neither a URL nor a database
// DSN to load from.
var ErrorNoSource = errors.New("dataset has no URL and no database DSN configured")

// LoadDataset loads one configured dataset, preferring its HTTP URL and
// falling back to the Postgres documents table. When detectLanguage is set,
// each document is tagged with its detected language.
func LoadDataset(ctx context.Context, cfg config.Config, ds config.DatasetConfig, detectLanguage bool, logger *slog.Logger) (corpus.Corpus, error) {
	records, err := loadRecords(ctx, cfg, ds, logger)
	if err != nil {
		return corpus.Corpus{}, err
	}

	var detector *text.Detector
	if detectLanguage {
		detector = text.NewDetector()
	}

	docs := make([]corpus.Document, len(records))
	for i, rec := range records {
		doc := corpus.Document{
			Author:    rec.Author,
			Text:      rec.Text,
			Timestamp: rec.Timestamp,
		}
		if detector != nil {
			doc.Language = detector.Detect(rec.Text)
		}
		docs[i] = doc
	}

	logger.Info("Loaded dataset", "dataset", ds.Name, "documents", len(docs))
	return corpus.New(docs), nil
}

func loadRecords(ctx context.Context, cfg config.Config, ds config.DatasetConfig, logger *slog.Logger) ([]source.Record, error) {
	if ds.URL != "" {
		var cache *source.Cache
		if cfg.Cache.Path != "" {
			opened, err := source.OpenCache(cfg.Cache.Path)
			if err != nil {
				return nil, fmt.Errorf("open cache %s: %w", cfg.Cache.Path, err)
			}
			defer opened.Close()
			cache = opened
		}
		return source.NewHTTPSource(cache).LoadDataset(ctx, ds.Name, ds.URL)
	}

	if cfg.Database.DSN != "" {
		pg, err := source.NewPostgresSource(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		return pg.LoadDataset(ctx, ds.Name)
	}

	return nil, fmt.Errorf("dataset %s: %w", ds.Name, ErrorNoSource)
}
