package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"logwatch/internal/app/errors"
	"logwatch/internal/app/match"
)

// Stream continuously appends matched lines to a caller-chosen CSV file for
// the duration of a run. Distinct from the on-demand snapshot export.
type Stream struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewStream creates the output file and writes the header. The file is
// truncated if it already exists.
func NewStream(path string) (*Stream, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrOutputFileFailed, err)
	}

	w := csv.NewWriter(file)

	if err := w.Write([]string{"Matched Line"}); err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrOutputFileFailed, err)
	}

	w.Flush()

	return &Stream{path: path, file: file, writer: w}, nil
}

// Write appends one matched row. Each row is flushed so an interrupted run
// keeps everything written so far.
func (s *Stream) Write(row match.Row) error {
	if err := s.writer.Write([]string{row.Text}); err != nil {
		return err
	}

	s.writer.Flush()

	return s.writer.Error()
}

// Path returns the output file path
func (s *Stream) Path() string {
	return s.path
}

// Close flushes and closes the output file
func (s *Stream) Close() error {
	s.writer.Flush()

	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}

	return s.file.Close()
}
