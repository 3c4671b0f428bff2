package analytics_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-tracker/internal/analytics"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/store/memory"
	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

var _ = Describe("WeeklyHistogram", func() {
	var now time.Time

	BeforeEach(func() {
		// Wednesday
		now = time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)
	})

	It("should start at the most recent Sunday at midnight", func() {
		Expect(analytics.WeekStart(now)).To(Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)))
	})

	It("should treat a Sunday as its own week start", func() {
		sunday := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
		Expect(analytics.WeekStart(sunday)).To(Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)))
	})

	It("should cross month boundaries", func() {
		friday := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		Expect(analytics.WeekStart(friday)).To(Equal(time.Date(2024, time.February, 25, 0, 0, 0, 0, time.UTC)))
	})

	It("should return seven labelled days with zero totals for no expenses", func() {
		days := analytics.WeeklyHistogram(nil, now)

		Expect(days).To(HaveLen(7))
		labels := make([]string, len(days))
		for i, d := range days {
			labels[i] = d.Label
			Expect(d.Amount.IsZero()).To(BeTrue())
		}
		Expect(labels).To(Equal([]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}))
	})

	It("should bucket expenses by calendar day", func() {
		expenses := []expense.Expense{
			spend("5", "Food", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
			spend("7", "Food", time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC)),
			spend("3", "Bills", time.Date(2024, time.March, 13, 14, 0, 0, 0, time.UTC)),
			spend("100", "Bills", time.Date(2024, time.March, 9, 23, 59, 0, 0, time.UTC)),
		}

		days := analytics.WeeklyHistogram(expenses, now)

		Expect(days[0].Amount.Equal(dec("5"))).To(BeTrue())
		Expect(days[3].Amount.Equal(dec("10"))).To(BeTrue())
		for _, i := range []int{1, 2, 4, 5, 6} {
			Expect(days[i].Amount.IsZero()).To(BeTrue())
		}
	})
})

var _ = Describe("CategoryTotals", func() {
	It("should follow category order and include empty categories", func() {
		now := time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)
		expenses := []expense.Expense{
			spend("4", "Bills", now),
			spend("6", "Food", now.AddDate(-1, 0, 0)),
			spend("1", "Bills", now),
			spend("9", "Retired", now),
		}

		totals := analytics.CategoryTotals(expenses, []string{"Food", "Transport", "Bills"})

		Expect(totals).To(HaveLen(3))
		Expect(totals[0].Category).To(Equal("Food"))
		Expect(totals[0].Amount.Equal(dec("6"))).To(BeTrue())
		Expect(totals[1].Category).To(Equal("Transport"))
		Expect(totals[1].Amount.IsZero()).To(BeTrue())
		Expect(totals[2].Amount.Equal(dec("5"))).To(BeTrue())
	})
})

var _ = Describe("Analytics Handler", func() {
	var (
		repo    *expense.Repository
		handler *analytics.Handler
		now     time.Time
	)

	BeforeEach(func() {
		slogger := logger.Discard()
		now = time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)
		repo = expense.NewRepository(memory.New(), nil, slogger)
		service := analytics.NewService(repo, slogger).WithClock(func() time.Time { return now })
		handler = analytics.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		ctx := context.Background()
		repo.AddExpense(ctx, spend("100", "Food", now))
		repo.AddExpense(ctx, spend("50", "Transport", now))
	})

	It("should serve the overview", func() {
		w := httptest.NewRecorder()
		handler.GetOverview(w, httptest.NewRequest(http.MethodGet, "/overview", nil))

		Expect(w.Code).To(Equal(http.StatusOK))

		var totals analytics.Totals
		Expect(json.NewDecoder(w.Body).Decode(&totals)).To(Succeed())
		Expect(totals.MonthTotal.Equal(dec("150"))).To(BeTrue())
		Expect(totals.CategoryBreakdown).To(HaveLen(2))
		// newest first: Transport was added last
		Expect(totals.CategoryBreakdown[0].Category).To(Equal("Transport"))
		Expect(totals.CategoryBreakdown[0].Percent).To(Equal("33.3"))
	})

	It("should serve the weekly chart", func() {
		w := httptest.NewRecorder()
		handler.GetWeeklyChart(w, httptest.NewRequest(http.MethodGet, "/charts/weekly", nil))

		var resp analytics.WeeklyChartResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Days).To(HaveLen(7))
		Expect(resp.Days[3].Amount.Equal(dec("150"))).To(BeTrue())
	})

	It("should serve the category chart", func() {
		w := httptest.NewRecorder()
		handler.GetCategoryChart(w, httptest.NewRequest(http.MethodGet, "/charts/categories", nil))

		var resp analytics.CategoryChartResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Categories).To(HaveLen(5))
		Expect(resp.Categories[0].Category).To(Equal("Food"))
		Expect(resp.Categories[0].Amount.Equal(dec("100"))).To(BeTrue())
	})
})
