package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("chatty")
	require.Error(t, err)
}

func TestLoggerWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: ComponentReport, Output: &buf})

	l.WithFields(NewFields().WithOperation(OpAdd).WithCard("Card A", 10, true)).Info("Card added")
	out := buf.String()
	require.Contains(t, out, "component=report")
	require.Contains(t, out, "operation=add_card")
	require.Contains(t, out, `card_name="Card A"`)
	require.Contains(t, out, "grade=10")

	buf.Reset()
	l.Debug("hidden")
	require.Empty(t, buf.String())
}

func TestFailure(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf})
	l.Failure(context.Background(), "Update failed", ErrorTypeNotFound, errors.New("card name not found"))
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "error_type=not_found_error")
}

func TestContextRoundTrip(t *testing.T) {
	l := Discard().WithComponent(ComponentMenu)
	ctx := NewContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))
	require.Equal(t, ComponentApp, FromContext(context.Background()).Component())
}
