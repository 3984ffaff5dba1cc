package pixels

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(nil)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("disabled logger should not be enabled for %v", level)
		}
	}
}

func TestLoggerFrameSize(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	d, err := New(2, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	d.SetOrientation(Landscape)
	_ = d.WriteBuffer(nil)

	out := buf.String()
	for _, want := range []string{"surface created", "orientation=landscape", "rejected source frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}
