// Package ingestion imports reference element data into the store.
//
// Records arrive as a JSON array or as newline-delimited JSON objects in
// the same shape as the embedded element list. A decoder goroutine feeds
// validated records into a buffered channel; the flush loop commits them
// to the database in batches of Config.BatchSize.
//
//	Reader → decode + validate → channel → batch buffer → Store.SeedElements
package ingestion

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

// Config holds configuration for an import run.
type Config struct {
	// BatchSize is the maximum number of records committed per transaction.
	BatchSize int `json:"batch_size"`

	// StopOnInvalid aborts the import at the first invalid record instead
	// of skipping it.
	StopOnInvalid bool `json:"stop_on_invalid"`
}

// DefaultConfig returns sensible defaults for an import run.
func DefaultConfig() Config {
	return Config{BatchSize: 50}
}

// Metrics summarizes an import run.
type Metrics struct {
	Imported         int64 `json:"imported"`
	Rejected         int64 `json:"rejected"`
	BatchesCommitted int64 `json:"batches_committed"`
}

// Importer loads element records into a store.
type Importer struct {
	config Config
	store  database.Store

	metrics Metrics
}

// NewImporter creates an importer writing to store.
func NewImporter(config Config, store database.Store) *Importer {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}
	return &Importer{config: config, store: store}
}

// Metrics returns a snapshot of the counters.
func (im *Importer) Metrics() Metrics {
	return Metrics{
		Imported:         atomic.LoadInt64(&im.metrics.Imported),
		Rejected:         atomic.LoadInt64(&im.metrics.Rejected),
		BatchesCommitted: atomic.LoadInt64(&im.metrics.BatchesCommitted),
	}
}

func (im *Importer) resetMetrics() {
	atomic.StoreInt64(&im.metrics.Imported, 0)
	atomic.StoreInt64(&im.metrics.Rejected, 0)
	atomic.StoreInt64(&im.metrics.BatchesCommitted, 0)
}

// Import reads every record from r and upserts the valid ones. Records
// already committed stay committed when a later batch fails. The returned
// metrics cover this run only.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Metrics, error) {
	im.resetMetrics()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	records := make(chan element.Element, im.config.BatchSize*2)

	var (
		wg       sync.WaitGroup
		flushErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		flushErr = im.flushLoop(records)
		if flushErr != nil {
			// Stop the decoder, then drain so it is never blocked on a
			// full channel.
			cancel()
			for range records {
			}
		}
	}()

	decodeErr := im.decode(ctx, r, records)
	close(records)
	wg.Wait()

	if flushErr != nil {
		return im.Metrics(), flushErr
	}
	if decodeErr != nil && !errors.Is(decodeErr, context.Canceled) {
		return im.Metrics(), decodeErr
	}
	return im.Metrics(), ctx.Err()
}

// decode streams records from r into out.
func (im *Importer) decode(ctx context.Context, r io.Reader, out chan<- element.Element) error {
	br := bufio.NewReader(r)
	array, err := startsWithArray(br)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(br)
	if array {
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("reading array start: %w", err)
		}
	}

	for n := 1; ; n++ {
		if array && !dec.More() {
			return nil
		}

		var el element.Element
		if err := dec.Decode(&el); err != nil {
			if errors.Is(err, io.EOF) && !array {
				return nil
			}
			return fmt.Errorf("decoding record %d: %w", n, err)
		}

		normalize(&el)
		if err := Validate(el); err != nil {
			atomic.AddInt64(&im.metrics.Rejected, 1)
			if im.config.StopOnInvalid {
				return fmt.Errorf("record %d: %w", n, err)
			}
			log.Printf("[WARN] Skipping record %d: %v", n, err)
			continue
		}

		select {
		case out <- el:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// flushLoop commits records in batches until in is closed.
func (im *Importer) flushLoop(in <-chan element.Element) error {
	buf := make([]element.Element, 0, im.config.BatchSize)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := im.store.SeedElements(buf); err != nil {
			return fmt.Errorf("committing batch of %d: %w", len(buf), err)
		}
		atomic.AddInt64(&im.metrics.Imported, int64(len(buf)))
		atomic.AddInt64(&im.metrics.BatchesCommitted, 1)
		buf = buf[:0]
		return nil
	}

	for el := range in {
		buf = append(buf, el)
		if len(buf) >= im.config.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

// normalize fills particle counts omitted from a record: protons and
// electrons default to the atomic number.
func normalize(el *element.Element) {
	el.Symbol = strings.TrimSpace(el.Symbol)
	el.Name = strings.TrimSpace(el.Name)
	if el.Protons == 0 {
		el.Protons = el.AtomicNumber
	}
	if el.Electrons == 0 {
		el.Electrons = el.AtomicNumber
	}
}

// Validate checks a single record. Reference entries describe neutral
// atoms, so electrons must match the atomic number like protons do.
func Validate(el element.Element) error {
	switch {
	case el.AtomicNumber <= 0:
		return fmt.Errorf("atomic number must be positive, got %d", el.AtomicNumber)
	case el.Symbol == "":
		return fmt.Errorf("element %d: missing symbol", el.AtomicNumber)
	case el.Name == "":
		return fmt.Errorf("element %d: missing name", el.AtomicNumber)
	case el.Protons != el.AtomicNumber:
		return fmt.Errorf("element %d: protons %d do not match atomic number", el.AtomicNumber, el.Protons)
	case el.Electrons != el.AtomicNumber:
		return fmt.Errorf("element %d: electrons %d do not match atomic number", el.AtomicNumber, el.Electrons)
	case el.Neutrons < 0:
		return fmt.Errorf("element %d: negative neutron count", el.AtomicNumber)
	case !el.Category.Valid():
		return fmt.Errorf("element %d: unknown category %q", el.AtomicNumber, el.Category)
	}
	return nil
}

// startsWithArray reports whether the first non-space byte is '['.
func startsWithArray(br *bufio.Reader) (bool, error) {
	for {
		b, err := br.Peek(1)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading input: %w", err)
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
		default:
			return b[0] == '[', nil
		}
	}
}
