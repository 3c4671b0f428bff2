package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	errors "github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/expense"
)

type Source interface {
	Expenses() []expense.Expense
}

type Service struct {
	source Source
	logger *slog.Logger
	now    func() time.Time
}

func NewService(source Source, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func ContentType(format string) string {
	switch format {
	case errors.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// FileName builds a sortable, timestamped name such as expenses-20240313-153000.csv.
func FileName(format string, at time.Time) string {
	return fmt.Sprintf("expenses-%s.%s", at.UTC().Format("20060102-150405"), format)
}

func unsupportedFormat(format string) *errors.AppError {
	return errors.NewValidationFieldError("format",
		fmt.Sprintf("export format %q is not supported", format),
		errors.ErrCodeUnsupportedFormat)
}

// Write renders the current expense list in format. Output is buffered so a
// rendering failure never leaves a partial document on w.
func (s *Service) Write(_ context.Context, w io.Writer, format string) error {
	expenses := s.source.Expenses()

	var buf bytes.Buffer
	var err error
	switch format {
	case errors.ExportFormatCSV:
		err = WriteCSV(&buf, expenses)
	case errors.ExportFormatXLSX:
		err = WriteXLSX(&buf, expenses)
	default:
		return unsupportedFormat(format)
	}
	if err != nil {
		s.logger.Error("failed to render export", "format", format, "error", err)
		return errors.NewExportError(err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Error("failed to write export", "format", format, "error", err)
		return errors.NewExportError(err)
	}

	s.logger.Info("expenses exported", "format", format, "rows", len(expenses))
	return nil
}

// WriteFile writes a timestamped export into dir, creating it when missing,
// and returns the file path.
func (s *Service) WriteFile(ctx context.Context, dir, format string) (string, error) {
	if format != errors.ExportFormatCSV && format != errors.ExportFormatXLSX {
		return "", unsupportedFormat(format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewExportError(fmt.Errorf("create export dir: %w", err))
	}

	path := filepath.Join(dir, FileName(format, s.now()))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.NewExportError(fmt.Errorf("create export file: %w", err))
	}

	if err := s.Write(ctx, f, format); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.NewExportError(fmt.Errorf("close export file: %w", err))
	}

	return path, nil
}
