// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package eventimport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/conflictglobe/internal/database"
	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/metrics"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// DefaultBatchSize is the number of events written per store call.
const DefaultBatchSize = 1000

// Importer streams events.json records into an event store.
type Importer struct {
	writer    database.EventWriter
	batchSize int
	log       *logging.StoreLogger
}

// NewImporter creates an importer writing to writer. A non-positive
// batchSize selects DefaultBatchSize.
func NewImporter(writer database.EventWriter, backend string, batchSize int) *Importer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Importer{
		writer:    writer,
		batchSize: batchSize,
		log:       logging.NewStoreLogger(backend),
	}
}

// ImportFile imports the JSON array stored at path.
func (i *Importer) ImportFile(ctx context.Context, path string) (*ImportStats, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("path", path).Msg("Error closing import file")
		}
	}()

	return i.Import(ctx, bufio.NewReaderSize(f, 1<<20), path)
}

// Import decodes a JSON array of records from r and writes the valid ones in
// batches. Bare NaN and Infinity values decode as null. Stats are returned even when the import fails part way; batches
// already written stay written.
func (i *Importer) Import(ctx context.Context, r io.Reader, source string) (*ImportStats, error) {
	stats := &ImportStats{Source: source, StartTime: time.Now()}
	defer func() {
		stats.EndTime = time.Now()
	}()

	dec := json.NewDecoder(newNonFiniteReader(r))
	if err := expectDelim(dec, '['); err != nil {
		return stats, err
	}

	batch := make([]models.Event, 0, i.batchSize)
	valid := 0
	for dec.More() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return stats, fmt.Errorf("decode record %d: %w", stats.Read+1, err)
		}
		stats.Read++

		ev, ok := ToEvent(&rec)
		if !ok {
			stats.Skipped++
			continue
		}
		valid++
		batch = append(batch, ev)

		if len(batch) >= i.batchSize {
			if err := i.flush(ctx, batch, stats); err != nil {
				return stats, err
			}
			batch = batch[:0]
		}
	}
	if err := i.flush(ctx, batch, stats); err != nil {
		return stats, err
	}
	if err := expectDelim(dec, ']'); err != nil {
		return stats, err
	}

	stats.Duplicates = valid - stats.Inserted
	stats.EndTime = time.Now()

	metrics.RecordEventsImported(stats.Inserted, stats.Skipped)
	i.log.LogImport(source, stats.Read, stats.Inserted, stats.Skipped+stats.Duplicates, stats.Duration())
	logging.Info().
		Str("source", source).
		Int("read", stats.Read).
		Int("inserted", stats.Inserted).
		Int("skipped", stats.Skipped).
		Int("duplicates", stats.Duplicates).
		Float64("records_per_second", stats.RecordsPerSecond()).
		Msg("Import completed")

	return stats, nil
}

// flush writes one batch and adds the inserted count to stats.
func (i *Importer) flush(ctx context.Context, batch []models.Event, stats *ImportStats) error {
	if len(batch) == 0 {
		return nil
	}
	inserted, err := i.writer.InsertEvents(ctx, batch)
	if err != nil {
		return fmt.Errorf("write batch ending at record %d: %w", stats.Read, err)
	}
	stats.Inserted += inserted

	logging.Debug().
		Int("batch", len(batch)).
		Int("inserted", inserted).
		Int("read", stats.Read).
		Msg("Import progress")
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read %q: %w", want, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
