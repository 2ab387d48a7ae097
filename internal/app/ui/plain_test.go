package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/match"
)

func runPlain(msgs ...bus.Message) string {
	var buf bytes.Buffer

	events := make(chan bus.Message, len(msgs))
	for _, msg := range msgs {
		events <- msg
	}

	close(events)

	NewPlain(&buf).Run(context.Background(), events)

	return buf.String()
}

func Test_Plain_RendersRows(t *testing.T) {
	var buf bytes.Buffer

	p := NewPlain(&buf)
	p.Row(match.Row{Text: "[UFW DROP] SRC=203.0.113.5", Severity: match.Critical})
	p.Row(match.Row{Text: "[UFW ACCEPT] SRC=10.0.0.8", Severity: match.OK})

	out := buf.String()
	assert.Contains(t, out, "[UFW DROP] SRC=203.0.113.5")
	assert.Contains(t, out, "[UFW ACCEPT] SRC=10.0.0.8")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\r\n")
}

func Test_Plain_UseCRLFTerminatesEveryLine(t *testing.T) {
	var buf bytes.Buffer

	// Raw terminal mode disables output post-processing, so every line
	// must carry an explicit carriage return.
	p := NewPlain(&buf)
	p.UseCRLF()
	p.Row(match.Row{Text: "[UFW DROP] SRC=203.0.113.5", Severity: match.Critical})
	p.Line("[*] Stopped")

	assert.Equal(t, 2, strings.Count(buf.String(), "\r\n"))
	assert.NotContains(t, strings.ReplaceAll(buf.String(), "\r\n", ""), "\n")
}

func Test_Plain_IgnoresBusMatchEvents(t *testing.T) {
	// Matches reach the renderer synchronously through Row; the lossy bus
	// feed must not produce duplicate lines.
	out := runPlain(
		bus.Message{Type: bus.EventMatch, Data: bus.Match{
			Row: match.Row{Text: "[UFW DROP] SRC=203.0.113.5", Severity: match.Critical},
		}},
	)

	assert.Empty(t, out)
}

func Test_Plain_RendersExportEvents(t *testing.T) {
	out := runPlain(
		bus.Message{Type: bus.EventExportDone, Data: bus.ExportDone{Path: "logwatch_export_20260831_120000.csv", Rows: 20}},
		bus.Message{Type: bus.EventExportFailed, Data: bus.ExportFailed{Err: errors.New("disk full")}},
		bus.Message{Type: bus.EventOutputClosed, Data: bus.OutputClosed{Path: "out.csv"}},
	)

	assert.Contains(t, out, "Saved current view to:")
	assert.Contains(t, out, "logwatch_export_20260831_120000.csv")
	assert.Contains(t, out, "Failed to save CSV:")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Output saved to")
}

func Test_Plain_IgnoresTailerStateEvents(t *testing.T) {
	out := runPlain(
		bus.Message{Type: bus.EventTailerState, Data: bus.TailerState{State: "tailing"}},
	)

	assert.Empty(t, out)
}

func Test_Plain_StopsOnContextCancellation(t *testing.T) {
	events := make(chan bus.Message)
	defer close(events)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})

	go func() {
		NewPlain(&bytes.Buffer{}).Run(ctx, events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("renderer should stop when the context ends")
	}
}
