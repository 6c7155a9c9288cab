package journal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
)

// jsonlHandler is a slog handler that writes one flat JSON object per record.
// The level and message are dropped, attributes are written at the top level
// next to an RFC 3339 "time" field.
type jsonlHandler struct {
	mu    *sync.Mutex
	out   io.Writer   // target writer for JSON lines
	attrs []slog.Attr // attributes added with WithAttrs
}

// newJSONLHandler creates a handler writing to out.
func newJSONLHandler(out io.Writer) *jsonlHandler {
	return &jsonlHandler{
		mu:  &sync.Mutex{},
		out: out,
	}
}

// Handle serializes r as a single JSON line.
func (h *jsonlHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, r.NumAttrs()+len(h.attrs)+1)
	fields["time"] = r.Time.UTC().Format(time.RFC3339Nano)

	add := func(a slog.Attr) bool {
		if a.Key != "" && a.Value.Any() != nil {
			fields[a.Key] = a.Value.Resolve().Any()
		}
		return true
	}
	for _, a := range h.attrs {
		add(a)
	}
	r.Attrs(add)

	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(data, '\n'))
	return err
}

// WithAttrs returns a handler that writes attrs on every record.
func (h *jsonlHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &jsonlHandler{
		mu:    h.mu,
		out:   h.out,
		attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup is a no-op, journal lines are always flat.
func (h *jsonlHandler) WithGroup(string) slog.Handler {
	return h
}

// Enabled always returns true.
func (h *jsonlHandler) Enabled(context.Context, slog.Level) bool {
	return true
}
