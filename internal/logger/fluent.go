package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Poster is the part of *fluent.Fluent used by FluentHandler.
type Poster interface {
	Post(tag string, message interface{}) error
}

var _ Poster = (*fluent.Fluent)(nil)

// FluentHandler forwards records to Fluent Bit, tagged "{app}.{level}".
type FluentHandler struct {
	client   Poster
	app      string
	minLevel slog.Level
	fields   map[string]any
	group    string
}

func NewFluentHandler(client Poster, app string, minLevel slog.Leveler) (*FluentHandler, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}

	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}

	return &FluentHandler{
		client:   client,
		app:      app,
		minLevel: level,
		fields:   map[string]any{},
	}, nil
}

// NewFluentClient connects to a Fluent Bit forward input.
func NewFluentClient(host string, port int) (*fluent.Fluent, error) {
	client, err := fluent.New(fluent.Config{
		FluentHost: host,
		FluentPort: port,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to fluent bit at %s:%d: %w", host, port, err)
	}
	return client, nil
}

func (h *FluentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

func (h *FluentHandler) Handle(_ context.Context, r slog.Record) error {
	data := make(map[string]any, len(h.fields)+r.NumAttrs()+3)
	for k, v := range h.fields {
		data[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(data, h.group, a)
		return true
	})

	level := strings.ToLower(r.Level.String())
	data["level"] = level
	data["message"] = r.Message
	data["timestamp"] = r.Time.UTC().Format(time.RFC3339Nano)

	return h.client.Post(h.app+"."+level, data)
}

func (h *FluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, a := range attrs {
		addAttr(clone.fields, h.group, a)
	}
	return clone
}

func (h *FluentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.group = joinKey(h.group, name)
	return clone
}

func (h *FluentHandler) clone() *FluentHandler {
	fields := make(map[string]any, len(h.fields))
	for k, v := range h.fields {
		fields[k] = v
	}
	return &FluentHandler{
		client:   h.client,
		app:      h.app,
		minLevel: h.minLevel,
		fields:   fields,
		group:    h.group,
	}
}

func addAttr(dst map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			addAttr(dst, joinKey(prefix, a.Key), ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	switch v.Kind() {
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			dst[joinKey(prefix, a.Key)] = err.Error()
			return
		}
		dst[joinKey(prefix, a.Key)] = fmt.Sprint(v.Any())
	case slog.KindDuration:
		dst[joinKey(prefix, a.Key)] = v.Duration().String()
	case slog.KindTime:
		dst[joinKey(prefix, a.Key)] = v.Time().UTC().Format(time.RFC3339Nano)
	default:
		dst[joinKey(prefix, a.Key)] = v.Any()
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
