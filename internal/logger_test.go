package internal

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.False(t, debugEnabled(l))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Decompose(*LoadFixture("l_shape"), Options{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=split")
	assert.Contains(t, out, "from=3")
	assert.Contains(t, out, "to=0")
	assert.Contains(t, out, `msg="convex piece"`)

	buf.Reset()
	_, err = Decompose(*LoadFixture("arrow_ccw"), Options{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reversed counterclockwise polygon")
}

func TestSetLogger_InfoLevelSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer SetLogger(nil)

	_, err := Decompose(*LoadFixture("comb"), Options{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSetLogger_NilRestoresDefault(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	assert.False(t, debugEnabled(Logger()))
}
