package command

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

func testLogger() logger.Logger {
	return logger.NewLoggerWithOutput(config.DefaultConfig(), io.Discard)
}

func Test_Watcher_handleKey(t *testing.T) {
	tests := []struct {
		name           string
		key            byte
		expectedExport int
		expectedQuit   int
	}{
		{name: "Lowercase s exports", key: 's', expectedExport: 1},
		{name: "Uppercase S exports", key: 'S', expectedExport: 1},
		{name: "q quits", key: 'q', expectedQuit: 1},
		{name: "Ctrl+C quits", key: 0x03, expectedQuit: 1},
		{name: "Other keys are ignored", key: 'x'},
		{name: "Enter is ignored", key: '\r'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exports := 0
			quits := 0

			w := NewWatcher(
				func() { exports++ },
				func() { quits++ },
				testLogger(),
			)

			w.handleKey(tt.key)

			assert.Equal(t, tt.expectedExport, exports)
			assert.Equal(t, tt.expectedQuit, quits)
		})
	}
}

func Test_Watcher_StartDegradesWithoutTerminal(t *testing.T) {
	w := NewWatcher(func() {}, func() {}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan struct{})

	go func() {
		// Test stdin is not a terminal, so Start returns immediately
		// instead of entering raw mode.
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start should return promptly when stdin is not a terminal")
	}
}
