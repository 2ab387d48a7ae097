//go:generate mockgen -source=export.go -destination=export_mock.go -package=export
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"logwatch/internal/app/errors"
	"logwatch/internal/app/match"
	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

// Exporter serializes matched rows to a durable record on demand
type Exporter interface {
	Export(rows []match.Row) (string, error)
}

// csvExporter implements Exporter by writing timestamped CSV files
type csvExporter struct {
	dir string
	now func() time.Time
	log logger.Logger
}

// New creates an Exporter writing into dir
func New(dir string, log logger.Logger) Exporter {
	return &csvExporter{
		dir: dir,
		now: time.Now,
		log: log.WithComponent("EXPORT"),
	}
}

// maxCreateAttempts caps the collision suffix when exports land in the
// same second
const maxCreateAttempts = 100

// Export writes the rows to a new timestamp-named CSV file, oldest first,
// and returns its path. Failures are reported to the caller and leave the
// pipeline untouched.
func (e *csvExporter) Export(rows []match.Row) (string, error) {
	file, path, err := e.create()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrExportFailed, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write([]string{"Time", "Matched Line"}); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrExportFailed, err)
	}

	for _, row := range rows {
		record := []string{row.Time.Format(config.RowTimeFormat), row.Text}

		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("%w: %w", errors.ErrExportFailed, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrExportFailed, err)
	}

	e.log.Info().Msgf("Saved current view to %s (%d rows)", path, len(rows))

	return path, nil
}

// create opens a new export file exclusively. The timestamp only has second
// resolution, so a second export in the same second gets a numeric suffix
// instead of truncating the first.
func (e *csvExporter) create() (*os.File, string, error) {
	stem := config.ExportFilePrefix + e.now().Format(config.ExportTimestampParts)

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		name := stem + ".csv"
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d.csv", stem, attempt)
		}

		path := filepath.Join(e.dir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}

		if !os.IsExist(err) {
			return nil, "", err
		}
	}

	return nil, "", fmt.Errorf("no free export file name for %s", stem)
}
