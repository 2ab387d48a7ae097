package ui

import (
	"fmt"
	"strings"

	"logwatch/internal/app/stats"
)

const (
	barWidth        = 20
	keywordColWidth = 16
)

// renderHistogram renders the top-n keyword counts as horizontal bars,
// widest bar scaled to the highest count
func renderHistogram(agg *stats.Aggregator, n int) string {
	type entry struct {
		keyword string
		count   int64
	}

	var (
		entries []entry
		maxHit  int64
	)

	for keyword, count := range agg.TopN(n) {
		entries = append(entries, entry{keyword: keyword, count: count})

		if count > maxHit {
			maxHit = count
		}
	}

	if len(entries) == 0 {
		return helpStyle.Render("no keyword matches yet")
	}

	var b strings.Builder

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		filled := int(e.count * barWidth / maxHit)
		if filled == 0 {
			filled = 1
		}

		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		keyword := e.keyword
		if len(keyword) > keywordColWidth {
			keyword = keyword[:keywordColWidth-1] + "…"
		}

		fmt.Fprintf(&b, "%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", keywordColWidth, keyword)),
			barStyle.Render(bar),
			countStyle.Render(fmt.Sprintf("%d", e.count)),
		)
	}

	return b.String()
}
