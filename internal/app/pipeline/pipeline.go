package pipeline

import (
	"context"
	"strings"
	"time"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/export"
	"logwatch/internal/app/match"
	"logwatch/internal/app/stats"
	"logwatch/internal/app/view"
	"logwatch/internal/config/logger"
)

// Pipeline is the single writer of the view and aggregator. It consumes raw
// lines, discards non-matches before any further work, classifies the rest
// and fans the rows out to the view, the stats table, the bus and the
// optional continuous output file.
type Pipeline struct {
	rule       *match.Rule
	classifier *match.Classifier
	view       *view.Bounded
	stats      *stats.Aggregator
	bus        bus.Bus
	stream     *export.Stream
	onRow      func(match.Row)
	log        logger.Logger
}

// New creates a Pipeline. stream may be nil when no --output is configured.
// onRow, when set, receives every matched row synchronously in arrival
// order; consumers that must not miss a match use it instead of the bus,
// which sheds non-critical events under load.
func New(
	rule *match.Rule,
	classifier *match.Classifier,
	v *view.Bounded,
	agg *stats.Aggregator,
	b bus.Bus,
	stream *export.Stream,
	onRow func(match.Row),
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		rule:       rule,
		classifier: classifier,
		view:       v,
		stats:      agg,
		bus:        b,
		stream:     stream,
		onRow:      onRow,
		log:        log.WithComponent("PIPELINE"),
	}
}

// Run consumes lines until the channel closes or the context is cancelled
func (p *Pipeline) Run(ctx context.Context, lines <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}

			p.process(line)
		}
	}
}

// process classifies and records a single line
func (p *Pipeline) process(line string) {
	if !p.rule.Matches(line) {
		return
	}

	severity, keyword := p.classifier.Classify(line)

	row := match.Row{
		Time:     time.Now(),
		Text:     strings.TrimSpace(line),
		Severity: severity,
		Keyword:  keyword,
	}

	p.view.Push(row)
	p.stats.Record(keyword)

	if p.onRow != nil {
		p.onRow(row)
	}

	p.bus.Publish(bus.Message{
		Type: bus.EventMatch,
		Data: bus.Match{Row: row, Total: p.stats.Total()},
	})

	if p.stream != nil {
		if err := p.stream.Write(row); err != nil {
			p.log.Warn().Err(err).Msg("Failed to append to output file")
		}
	}
}
