package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrLogFileRequired = errors.New("log file path is required")
	ErrFileNotFound    = errors.New("log file not found")
	ErrAccessDenied    = errors.New("log file is not readable")

	ErrInvalidRegexPattern   = errors.New("invalid regex pattern")
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")

	ErrInvalidCapacity     = errors.New("view capacity must be positive")
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
	ErrInvalidRefreshRate  = errors.New("refresh rate must be positive")
	ErrInvalidSeverity     = errors.New("invalid severity name")

	ErrExportFailed     = errors.New("failed to write export file")
	ErrOutputFileFailed = errors.New("failed to open output file")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
