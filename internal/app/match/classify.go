package match

import (
	"strings"

	"logwatch/internal/config"
)

// markerRule is a compiled severity rule. Markers written entirely in
// lowercase match case-insensitively (e.g. "alert" hits "ALERT" too);
// markers with any uppercase match literally.
type markerRule struct {
	marker   string
	fold     bool
	severity Severity
}

// Classifier assigns a severity and originating keyword to a matched line.
// Rules are checked in declaration order and the first hit wins.
type Classifier struct {
	rules    []markerRule
	keywords []string
	folded   []string
}

// NewClassifier builds a Classifier from ordered severity rules and the
// configured keyword list
func NewClassifier(rules []config.SeverityRule, keywords []string) *Classifier {
	c := &Classifier{
		rules:    make([]markerRule, 0, len(rules)),
		keywords: keywords,
		folded:   make([]string, 0, len(keywords)),
	}

	for _, rule := range rules {
		lower := strings.ToLower(rule.Marker)

		c.rules = append(c.rules, markerRule{
			marker:   rule.Marker,
			fold:     rule.Marker == lower,
			severity: Severity(rule.Severity),
		})
	}

	for _, kw := range keywords {
		c.folded = append(c.folded, strings.ToLower(kw))
	}

	return c
}

// Classify returns the severity for the line and the first configured
// keyword found in it, or an empty keyword when the match came from a
// regex or IP criterion
func (c *Classifier) Classify(line string) (Severity, string) {
	severity := Neutral
	lower := strings.ToLower(line)

	for _, rule := range c.rules {
		if rule.fold {
			if strings.Contains(lower, rule.marker) {
				severity = rule.severity
				break
			}

			continue
		}

		if strings.Contains(line, rule.marker) {
			severity = rule.severity
			break
		}
	}

	keyword := ""

	for i, kw := range c.folded {
		if strings.Contains(lower, kw) {
			keyword = c.keywords[i]
			break
		}
	}

	return severity, keyword
}
