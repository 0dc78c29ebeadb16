package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/observability"
	"github.com/matzehuels/lwcharts/pkg/store"
)

// =============================================================================
// Writer Surface
// =============================================================================

// WriterSurface writes each document as one JSON value to w. It never
// reports events.
type WriterSurface struct {
	w      io.Writer
	indent bool
}

// NewWriterSurface returns a surface writing to w, optionally indented.
func NewWriterSurface(w io.Writer, indent bool) *WriterSurface {
	return &WriterSurface{w: w, indent: indent}
}

func (s *WriterSurface) Name() string { return "writer" }

func (s *WriterSurface) Render(ctx context.Context, f Frame) (map[string]any, error) {
	payload := f.Payload
	if s.indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, payload, "", "  "); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "indent document")
		}
		payload = buf.Bytes()
	}
	if _, err := s.w.Write(payload); err != nil {
		return nil, err
	}
	_, err := io.WriteString(s.w, "\n")
	return nil, err
}

// Close closes w when it is an io.Closer.
func (s *WriterSurface) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// =============================================================================
// Store Surface
// =============================================================================

// StoreSurface publishes documents to a store for an out-of-process renderer
// and reads back the renderer's latest event.
//
// The full document is written under the document key of every chart it
// contains. After publishing, the event key of the first chart is consumed:
// a stored event is decoded, deleted and returned.
type StoreSurface struct {
	Store  store.Store
	Keyer  store.Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// NewStoreSurface creates a surface over s. A nil keyer uses
// store.DefaultKeyer and a nil logger uses log.Default().
func NewStoreSurface(s store.Store, keyer store.Keyer, ttl time.Duration, logger *log.Logger) *StoreSurface {
	if keyer == nil {
		keyer = store.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &StoreSurface{Store: s, Keyer: keyer, TTL: ttl, Logger: logger}
}

func (s *StoreSurface) Name() string { return "store" }

func (s *StoreSurface) Render(ctx context.Context, f Frame) (map[string]any, error) {
	if len(f.ChartIDs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no charts")
	}
	hooks := observability.Store()

	for _, id := range f.ChartIDs {
		key := s.Keyer.DocumentKey(id)
		err := store.RetryWithBackoff(ctx, func() error {
			return s.Store.Set(ctx, key, f.Payload, s.TTL)
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "publish %s", id)
		}
		hooks.OnStoreSet(ctx, "document", len(f.Payload))
		s.Logger.Debug("published document", "key", key, "bytes", len(f.Payload))
	}

	key := s.Keyer.EventKey(f.ChartIDs[0])
	raw, ok, err := s.Store.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read event %s", key)
	}
	if !ok {
		hooks.OnStoreMiss(ctx, "event")
		return nil, nil
	}
	hooks.OnStoreHit(ctx, "event")

	var event map[string]any
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode event %s", key)
	}
	if err := s.Store.Delete(ctx, key); err != nil {
		s.Logger.Warn("failed to consume event", "key", key, "err", err)
	}
	return event, nil
}

// Close closes the underlying store.
func (s *StoreSurface) Close() error {
	return s.Store.Close()
}

var (
	_ Surface = (*WriterSurface)(nil)
	_ Surface = (*StoreSurface)(nil)
)
