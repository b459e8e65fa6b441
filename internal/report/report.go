// Package report writes deployment, rollback, and verification artifacts.
// Artifacts are audit records: plain markdown and JSON files named after
// the run timestamp, never overwritten or cleaned up automatically.
package report

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

// Timestamp returns the artifact timestamp for a run. Every artifact of
// one run shares it, so plan files, backups, and summaries correlate.
func Timestamp() string {
	return time.Now().UTC().Format(constants.ArtifactTimeFormat)
}

// Writer persists artifacts under a report directory.
type Writer struct {
	dir string
	log *slog.Logger
}

// NewWriter returns a writer rooted at dir. The directory is created on
// first write.
func NewWriter(dir string, log *slog.Logger) *Writer {
	return &Writer{dir: dir, log: log}
}

// Dir returns the report directory.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, constants.ReportDirPermissions); err != nil {
		return "", apperrors.NewInternalError("failed to create report directory "+w.dir, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, constants.ReportFilePermissions); err != nil {
		return "", apperrors.NewInternalError("failed to write "+path, err)
	}
	w.log.Debug("artifact written", "path", path)
	return path, nil
}

// WriteStateBackup persists a pulled state document before a rollback.
func (w *Writer) WriteStateBackup(raw string, timestamp string) (string, error) {
	return w.write(constants.StateBackupFileName(timestamp), []byte(raw))
}

// escapeCell makes a string safe inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
