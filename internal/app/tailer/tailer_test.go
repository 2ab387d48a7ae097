package tailer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logwatch/internal/app/errors"
	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

func testLogger() logger.Logger {
	return logger.NewLoggerWithOutput(config.DefaultConfig(), io.Discard)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func collectLines(t *testing.T, tail *Tailer) []string {
	t.Helper()

	var lines []string
	for line := range tail.Lines() {
		lines = append(lines, line)
	}

	return lines
}

func Test_New_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{
			name:     "Missing file",
			opts:     Options{Path: "/nonexistent/missing.log", PollInterval: time.Millisecond},
			expected: errors.ErrFileNotFound,
		},
		{
			name:     "Invalid poll interval",
			opts:     Options{Path: "/tmp/whatever.log", PollInterval: 0},
			expected: errors.ErrInvalidPollInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tail, err := New(tt.opts, testLogger())

			assert.Nil(t, tail)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_Tailer_ScanReadsAllLines(t *testing.T) {
	path := writeFile(t, "line one\nline two\nline three\n")

	tail, err := New(Options{Path: path, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, StateScanning, tail.State())

	done := make(chan error, 1)
	go func() { done <- tail.Run(context.Background()) }()

	lines := collectLines(t, tail)

	require.NoError(t, <-done)
	assert.Equal(t, []string{"line one", "line two", "line three"}, lines)
	assert.Equal(t, StateDone, tail.State())
}

func Test_Tailer_ScanEmitsTrailingPartialLine(t *testing.T) {
	path := writeFile(t, "complete line\nno terminator")

	tail, err := New(Options{Path: path, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- tail.Run(context.Background()) }()

	lines := collectLines(t, tail)

	require.NoError(t, <-done)
	assert.Equal(t, []string{"complete line", "no terminator"}, lines)
}

func Test_Tailer_ScanStripsCarriageReturns(t *testing.T) {
	path := writeFile(t, "windows line\r\nunix line\n")

	tail, err := New(Options{Path: path, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- tail.Run(context.Background()) }()

	lines := collectLines(t, tail)

	require.NoError(t, <-done)
	assert.Equal(t, []string{"windows line", "unix line"}, lines)
}

func Test_Tailer_ScanEmptyFile(t *testing.T) {
	path := writeFile(t, "")

	tail, err := New(Options{Path: path, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- tail.Run(context.Background()) }()

	lines := collectLines(t, tail)

	require.NoError(t, <-done)
	assert.Empty(t, lines)
}

func Test_Tailer_FollowSkipsExistingContent(t *testing.T) {
	path := writeFile(t, "old line\n")

	tail, err := New(Options{Path: path, Follow: true, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- tail.Run(ctx) }()

	// Give follow mode a few polls; nothing old may come through.
	select {
	case line, ok := <-tail.Lines():
		if ok {
			t.Fatalf("unexpected line from existing content: %q", line)
		}
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func Test_Tailer_FollowPicksUpAppendedLines(t *testing.T) {
	path := writeFile(t, "old line\n")

	tail, err := New(Options{Path: path, Follow: true, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- tail.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return tail.State() == StateTailing
	}, time.Second, 5*time.Millisecond)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	_, err = file.WriteString("appended one\nappended two\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	var lines []string

	timeout := time.After(2 * time.Second)
	for len(lines) < 2 {
		select {
		case line := <-tail.Lines():
			lines = append(lines, line)
		case <-timeout:
			t.Fatalf("timed out waiting for appended lines, got %v", lines)
		}
	}

	assert.Equal(t, []string{"appended one", "appended two"}, lines)

	cancel()
	require.NoError(t, <-done)
}

func Test_Tailer_FollowBuffersPartialWrites(t *testing.T) {
	path := writeFile(t, "")

	tail, err := New(Options{Path: path, Follow: true, PollInterval: 10 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- tail.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return tail.State() == StateTailing
	}, time.Second, 5*time.Millisecond)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	// Half a line, then the rest. Exactly one line must come out.
	_, err = file.WriteString("first ha")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = file.WriteString("lf second half\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	select {
	case line := <-tail.Lines():
		assert.Equal(t, "first half second half", line)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the completed line")
	}

	select {
	case line := <-tail.Lines():
		t.Fatalf("unexpected extra line: %q", line)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func Test_Tailer_StateNotifications(t *testing.T) {
	path := writeFile(t, "line\n")

	var states []string

	tail, err := New(Options{
		Path:         path,
		PollInterval: 10 * time.Millisecond,
		OnState:      func(state string) { states = append(states, state) },
	}, testLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- tail.Run(context.Background()) }()

	collectLines(t, tail)
	require.NoError(t, <-done)

	assert.Equal(t, []string{StateScanning, StateDone}, states)
}
