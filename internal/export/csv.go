// Package export renders the expense list as CSV or XLSX.
package export

import (
	"io"
	"strings"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/expense"
)

const (
	csvHeader = "Date,Category,Amount"
	// TimestampLayout is ISO-8601 in UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// CSV renders one row per expense in list order, rows separated by "\n" with
// no trailing newline. Fields are written verbatim: a category containing a
// comma or quote produces a malformed row.
func CSV(expenses []expense.Expense) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	for _, e := range expenses {
		b.WriteByte('\n')
		b.WriteString(FormatTimestamp(e.Date))
		b.WriteByte(',')
		b.WriteString(e.Category)
		b.WriteByte(',')
		b.WriteString(e.Amount.String())
	}
	return b.String()
}

func WriteCSV(w io.Writer, expenses []expense.Expense) error {
	_, err := io.WriteString(w, CSV(expenses))
	return err
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
