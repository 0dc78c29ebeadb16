package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/observability"
)

// Frame is one encoded document on its way to a surface.
type Frame struct {
	ChartIDs []string
	Payload  []byte
}

// Surface is the rendering collaborator a document is handed to. Render
// returns the surface's event mapping, or nil when it has nothing to report.
type Surface interface {
	Name() string
	Render(ctx context.Context, f Frame) (map[string]any, error)
	Close() error
}

// Context owns one surface for the lifetime of a build. It replaces any
// process-wide "current surface": routines that dispatch documents receive
// the Context explicitly.
//
// A Context is safe for concurrent use; dispatches are serialized.
type Context struct {
	mu      sync.Mutex
	surface Surface
	logger  *log.Logger
	closed  bool
}

// Init binds surface to a new Context. A nil logger uses log.Default().
func Init(surface Surface, logger *log.Logger) (*Context, error) {
	if surface == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bridge needs a surface")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Context{surface: surface, logger: logger}, nil
}

// Surface returns the bound surface.
func (c *Context) Surface() Surface { return c.surface }

// Dispatch encodes doc, hands it to the surface and parses the reply.
// A nil Response means the surface reported nothing.
func (c *Context) Dispatch(ctx context.Context, doc document.Document) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, errors.New(errors.ErrCodeInternal, "bridge is closed")
	}

	payload, err := doc.JSON()
	if err != nil {
		return nil, err
	}
	ids := chartIDs(doc)
	hooks := observability.Bridge()
	hooks.OnDispatch(ctx, len(ids), len(payload))

	start := time.Now()
	reply, err := c.surface.Render(ctx, Frame{ChartIDs: ids, Payload: payload})
	if err != nil {
		hooks.OnError(ctx, err)
		return nil, err
	}
	resp, err := ParseResponse(reply)
	if err != nil {
		hooks.OnError(ctx, err)
		return nil, err
	}

	typ := ""
	if resp != nil {
		typ = resp.Type
		if !resp.Known() {
			c.logger.Warn("unknown response type from surface", "surface", c.surface.Name(), "type", typ)
		}
	}
	hooks.OnResponse(ctx, typ, time.Since(start))
	c.logger.Debug("dispatched document",
		"surface", c.surface.Name(),
		"charts", len(ids),
		"bytes", len(payload),
		"response", typ)
	return resp, nil
}

// Close closes the surface. Closing twice is a no-op.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.surface.Close()
}

func chartIDs(doc document.Document) []string {
	charts := doc.Charts()
	ids := make([]string, 0, len(charts))
	for _, c := range charts {
		if id, ok := c["chartId"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
