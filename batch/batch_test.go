package batch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"testing"

	"bytestr"
	"github.com/stretchr/testify/require"
)

func subjects(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("id=%d,name=user-%d,,role=Admin", i, i)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	r := New(Config{})
	require.Equal(t, runtime.GOMAXPROCS(0), r.limit)
	require.Equal(t, "exact", r.finder.String())

	r = New(Config{Concurrency: 3, Finder: bytestr.Fold})
	require.Equal(t, 3, r.limit)
	require.Equal(t, "fold", r.finder.String())
}

func TestReplaceMatchesSequential(t *testing.T) {
	in := subjects(500)
	r := New(Config{Concurrency: 4})

	got, err := r.Replace(context.Background(), in, ",", ";")
	require.NoError(t, err)
	require.Len(t, got, len(in))

	for i, s := range in {
		want, err := bytestr.Replace(s, ",", ";")
		require.NoError(t, err)
		require.Equal(t, want, got[i], "subject %d", i)
	}
}

func TestReplaceWithFoldFinder(t *testing.T) {
	r := New(Config{Finder: bytestr.Fold})
	got, err := r.Replace(context.Background(), []string{"role=Admin", "ROLE=ADMIN", "none"}, "admin", "user")
	require.NoError(t, err)
	require.Equal(t, []string{"role=user", "ROLE=user", "none"}, got)
}

func TestSplitMatchesSequential(t *testing.T) {
	in := subjects(200)
	r := New(Config{Concurrency: 8})

	for _, policy := range []bytestr.EmptyParts{bytestr.KeepEmpty, bytestr.IgnoreEmpty} {
		got, err := r.Split(context.Background(), in, ",", policy)
		require.NoError(t, err)
		require.Len(t, got, len(in))
		for i, s := range in {
			want, err := bytestr.Split(s, ",", policy)
			require.NoError(t, err)
			require.Equal(t, want, got[i], "subject %d policy %v", i, policy)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	r := New(Config{})
	got, err := r.Replace(context.Background(), nil, "a", "b")
	require.NoError(t, err)
	require.Empty(t, got)

	parts, err := r.Split(context.Background(), []string{}, ",", bytestr.KeepEmpty)
	require.NoError(t, err)
	require.Empty(t, parts)
}

func TestInvalidArguments(t *testing.T) {
	r := New(Config{})

	_, err := r.Replace(context.Background(), []string{"abc"}, "", "x")
	require.ErrorIs(t, err, bytestr.ErrEmptyToken)

	_, err = r.Split(context.Background(), []string{"abc"}, "", bytestr.KeepEmpty)
	require.ErrorIs(t, err, bytestr.ErrEmptyToken)

	_, err = r.Split(context.Background(), []string{"abc"}, ",", bytestr.EmptyParts(9))
	require.ErrorIs(t, err, bytestr.ErrInvalidPolicy)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(Config{Concurrency: 2})
	got, err := r.Replace(ctx, subjects(10), ",", ";")
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)

	parts, err := r.Split(ctx, subjects(10), ",", bytestr.KeepEmpty)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, parts)
}

func TestLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := New(Config{Concurrency: 2, Logger: logger})
	_, err := r.Replace(context.Background(), subjects(5), ",", ";")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "batch started")
	require.Contains(t, out, "batch finished")
	require.Contains(t, out, "component=batch")
	require.Contains(t, out, "op=replace")
	// Per-subject work is never logged.
	require.Equal(t, 2, strings.Count(out, "\n"))
}
