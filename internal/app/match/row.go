package match

import (
	"time"
)

// Severity classifies the display style of a matched line
type Severity string

// Severity values, strongest first
const (
	Critical Severity = "critical"
	Warning  Severity = "warning"
	Notice   Severity = "notice"
	OK       Severity = "ok"
	Neutral  Severity = "neutral"
)

// Row represents a single matched log line. Rows are immutable once created.
type Row struct {
	Time     time.Time
	Text     string
	Severity Severity
	Keyword  string // originating keyword, empty when the match came from regex or IP
}
