package export_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/export"
	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

type staticSource []expense.Expense

func (s staticSource) Expenses() []expense.Expense {
	return s
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

var sample = staticSource{
	{
		ID:       "2",
		Amount:   decimal.RequireFromString("12.5"),
		Category: "Food",
		Note:     "Coffee run",
		Date:     time.Date(2024, time.March, 13, 9, 30, 15, 250*int(time.Millisecond), time.UTC),
	},
	{
		ID:       "1",
		Amount:   decimal.NewFromInt(40),
		Category: "Bills",
		Date:     time.Date(2024, time.March, 12, 18, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60)),
	},
}

var _ = Describe("CSV", func() {
	It("should render a header only for no expenses", func() {
		Expect(export.CSV(nil)).To(Equal("Date,Category,Amount"))
	})

	It("should render rows in list order with UTC millisecond timestamps", func() {
		Expect(export.CSV(sample)).To(Equal(
			"Date,Category,Amount\n" +
				"2024-03-13T09:30:15.250Z,Food,12.5\n" +
				"2024-03-12T16:00:00.000Z,Bills,40"))
	})

	It("should leave fields unescaped", func() {
		odd := []expense.Expense{{
			Amount:   decimal.NewFromInt(1),
			Category: "Food, Drinks",
			Date:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		}}

		out := export.CSV(odd)
		lines := strings.Split(out, "\n")
		Expect(lines[1]).To(Equal("2024-01-01T00:00:00.000Z,Food, Drinks,1"))
		Expect(strings.Count(lines[1], ",")).To(Equal(3))
	})

	It("should write the same text to a writer", func() {
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, sample)).To(Succeed())
		Expect(buf.String()).To(Equal(export.CSV(sample)))
	})
})

var _ = Describe("WriteXLSX", func() {
	It("should produce a readable workbook with a header and one row per expense", func() {
		var buf bytes.Buffer
		Expect(export.WriteXLSX(&buf, sample)).To(Succeed())

		f, err := excelize.OpenReader(&buf)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Expenses")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{"Date", "Category", "Amount", "Note"}))
		Expect(rows[1][0]).To(Equal("2024-03-13T09:30:15.250Z"))
		Expect(rows[1][1]).To(Equal("Food"))
		Expect(rows[1][2]).To(Equal("12.5"))
		Expect(rows[1][3]).To(Equal("Coffee run"))
		Expect(rows[2][1]).To(Equal("Bills"))
	})
})

var _ = Describe("Export Service", func() {
	var (
		service *export.Service
		now     time.Time
		ctx     context.Context
	)

	BeforeEach(func() {
		now = time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)
		service = export.NewService(sample, logger.Discard()).WithClock(func() time.Time { return now })
		ctx = context.Background()
	})

	It("should name files by format and timestamp", func() {
		Expect(export.FileName("csv", now)).To(Equal("expenses-20240313-153000.csv"))
	})

	It("should reject unknown formats", func() {
		err := service.Write(ctx, &bytes.Buffer{}, "pdf")

		appErr, ok := apperrors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("should report writer failures as export errors", func() {
		err := service.Write(ctx, failingWriter{}, "csv")

		appErr, ok := apperrors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(apperrors.ErrCodeExportFailed))
	})

	It("should write a timestamped file into the export directory", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "nested")

		path, err := service.WriteFile(ctx, dir, "csv")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "expenses-20240313-153000.csv")))

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal(export.CSV(sample)))
	})

	It("should not create a file for an unknown format", func() {
		dir := GinkgoT().TempDir()

		_, err := service.WriteFile(ctx, dir, "pdf")
		Expect(err).To(HaveOccurred())

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})
})

var _ = Describe("Export Handler", func() {
	var handler *export.Handler

	BeforeEach(func() {
		slogger := logger.Discard()
		handler = export.NewHandler(&transport.BaseHandler{Logger: slogger}, export.NewService(sample, slogger))
	})

	It("should serve CSV as an attachment", func() {
		w := httptest.NewRecorder()
		handler.ExportCSV(w, httptest.NewRequest(http.MethodGet, "/export.csv", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/csv"))
		Expect(w.Header().Get("Content-Disposition")).To(MatchRegexp(`attachment; filename="expenses-\d{8}-\d{6}\.csv"`))
		Expect(w.Body.String()).To(Equal(export.CSV(sample)))
	})

	It("should serve XLSX", func() {
		w := httptest.NewRecorder()
		handler.ExportXLSX(w, httptest.NewRequest(http.MethodGet, "/export.xlsx", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("spreadsheetml"))
		Expect(w.Body.Len()).To(BeNumerically(">", 0))
	})
})
