package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Poster is the subset of *fluent.Fluent the sink needs.
type Poster interface {
	Post(tag string, message interface{}) error
}

type FluentConfig struct {
	Host      string
	Port      int
	TagPrefix string
}

// NewFluentClient connects lazily: creating the client does not guarantee the
// Fluent Bit endpoint is reachable, errors surface on the first Post.
func NewFluentClient(conf FluentConfig) (*fluent.Fluent, error) {
	if conf.TagPrefix == "" {
		return nil, ErrEmptyTagPrefix
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: conf.Host,
		FluentPort: conf.Port,
		TagPrefix:  conf.TagPrefix,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("create fluent client: %w", err)
	}

	return client, nil
}

type sinkHandler struct {
	poster Poster
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

func newSinkHandler(p Poster, level slog.Leveler) *sinkHandler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &sinkHandler{poster: p, level: level}
}

func (h *sinkHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *sinkHandler) Handle(_ context.Context, r slog.Record) error {
	data := make(map[string]any, len(h.attrs)+r.NumAttrs()+3) //nolint:gomnd // level, message, timestamp

	for _, a := range h.attrs {
		data[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		data[h.key(a.Key)] = a.Value.Any()

		return true
	})

	level := strings.ToLower(r.Level.String())
	data["level"] = level
	data["message"] = r.Message
	data["timestamp"] = r.Time.UTC().Format(time.RFC3339Nano)

	if err := h.poster.Post(level, data); err != nil {
		return fmt.Errorf("post log record: %w", err)
	}

	return nil
}

func (h *sinkHandler) key(k string) string {
	if h.group == "" {
		return k
	}

	return h.group + "." + k
}

func (h *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		c.attrs = append(c.attrs, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}

	return &c
}

func (h *sinkHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = h.key(name)

	return &c
}
