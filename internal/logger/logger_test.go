package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type recordingPoster struct {
	tags     []string
	messages []map[string]any
	err      error
}

func (p *recordingPoster) Post(tag string, message interface{}) error {
	p.tags = append(p.tags, tag)
	p.messages = append(p.messages, message.(map[string]any))

	return p.err
}

func TestLogger_WritesPlainTextAtLevel(t *testing.T) {
	var buf bytes.Buffer

	l := New(Config{Writer: &buf, Level: slog.LevelInfo})
	l.LogDebugf("hidden %d", 1)
	l.LogInfo("session %s created", "abc")
	l.LogErrorf("boom: %v", errors.New("disk"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %q", out)
	}

	if !strings.Contains(out, "session abc created") || !strings.Contains(out, "boom: disk") {
		t.Fatalf("missing records: %q", out)
	}
}

func TestLogger_FansOutToSink(t *testing.T) {
	var buf bytes.Buffer

	sink := &recordingPoster{}
	l := New(Config{Writer: &buf, Level: slog.LevelDebug, Sink: sink, SinkLevel: slog.LevelWarn})

	l.With("component", "store").LogInfo("not shipped")
	l.With("component", "store").LogWarnf("storage write failed")

	if len(sink.messages) != 1 {
		t.Fatalf("expected 1 shipped record, got %d", len(sink.messages))
	}

	msg := sink.messages[0]
	if sink.tags[0] != "warn" || msg["message"] != "storage write failed" || msg["component"] != "store" {
		t.Fatalf("unexpected shipped record: tag=%s %+v", sink.tags[0], msg)
	}

	if !strings.Contains(buf.String(), "not shipped") {
		t.Fatalf("console handler should still receive info records: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	} {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFluentClient_RequiresTagPrefix(t *testing.T) {
	if _, err := NewFluentClient(FluentConfig{Host: "localhost", Port: 24224}); !errors.Is(err, ErrEmptyTagPrefix) {
		t.Fatalf("expected ErrEmptyTagPrefix, got %v", err)
	}
}
