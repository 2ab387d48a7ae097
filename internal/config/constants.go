package config

import "time"

// app constants
const (
	ConfigFile = "logwatch.yaml"

	Version = "1.2.0"
)

// logging constants
const (
	LogLevel  = "info"
	LogFormat = "console"
)

// view constants
const (
	DefaultCapacity = 20
)

// tail constants
const (
	DefaultPollInterval = 500 * time.Millisecond
)

// ui constants
const (
	DefaultRefreshPerSecond = 4
	DefaultHistogramSize    = 5
)

// export constants
const (
	ExportFilePrefix     = "logwatch_export_"
	ExportTimestampParts = "20060102_150405"
	RowTimeFormat        = "15:04:05"
)

// severity names
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityNotice   = "notice"
	SeverityOK       = "ok"
	SeverityNeutral  = "neutral"
)
