package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/match"
)

// Plain is the non-interactive renderer: one styled line per match in
// arrival order, no redraw. Matched rows arrive synchronously through Row
// so none is ever dropped; the bus subscription only carries export and
// output events, which are low-rate and published as critical.
type Plain struct {
	mu  sync.Mutex
	out io.Writer
	eol string
}

// NewPlain creates a plain renderer writing to out
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out, eol: "\n"}
}

// UseCRLF switches line endings to \r\n. Needed while the keypress watcher
// holds the terminal in raw mode, where output post-processing is off and a
// bare \n no longer returns the cursor to column 0.
func (p *Plain) UseCRLF() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.eol = "\r\n"
}

// Row renders one matched row. The pipeline calls it for every match, in
// arrival order.
func (p *Plain) Row(row match.Row) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s%s", severityStyle(row.Severity).Render(row.Text), p.eol)
}

// Line renders one informational line, serialized against concurrent Row
// output
func (p *Plain) Line(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s%s", text, p.eol)
}

// Run consumes bus events until the subscription closes or the context
// ends. It never mutates pipeline state.
func (p *Plain) Run(ctx context.Context, events <-chan bus.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}

			p.render(msg)
		}
	}
}

func (p *Plain) render(msg bus.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch data := msg.Data.(type) {
	case bus.ExportDone:
		fmt.Fprintf(p.out, "%s %s%s", statusOKStyle.Render("[+] Saved current view to:"), data.Path, p.eol)
	case bus.ExportFailed:
		fmt.Fprintf(p.out, "%s %v%s", statusErrStyle.Render("[-] Failed to save CSV:"), data.Err, p.eol)
	case bus.OutputClosed:
		fmt.Fprintf(p.out, "%s %s%s", statusOKStyle.Render("[+] Output saved to"), data.Path, p.eol)
	}
}
