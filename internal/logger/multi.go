package logger

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler fans every record out to all of its handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	enriched := make([]slog.Handler, 0, len(m.handlers))
	for _, h := range m.handlers {
		enriched = append(enriched, h.WithAttrs(attrs))
	}
	return &MultiHandler{handlers: enriched}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	enriched := make([]slog.Handler, 0, len(m.handlers))
	for _, h := range m.handlers {
		enriched = append(enriched, h.WithGroup(name))
	}
	return &MultiHandler{handlers: enriched}
}
