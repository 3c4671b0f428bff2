package expense_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

var _ = Describe("Expense Handler", func() {
	var (
		st      *failingStore
		repo    *expense.Repository
		handler *expense.Handler
		now     time.Time
	)

	BeforeEach(func() {
		slogger := logger.Discard()
		st = newFailingStore()
		repo = expense.NewRepository(st, nil, slogger)
		now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
		service := expense.NewService(repo, slogger).WithClock(func() time.Time { return now })
		handler = expense.NewHandler(&transport.BaseHandler{Logger: slogger}, service)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.CreateExpense(w, req)
		return w
	}

	It("should create an expense from a JSON body", func() {
		w := post(`{"amount":"12.5","category":"Food","note":"Coffee run"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var created expense.Expense
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.Amount.String()).To(Equal("12.5"))
		Expect(created.Category).To(Equal("Food"))
		Expect(repo.Expenses()).To(HaveLen(1))
	})

	It("should accept a numeric amount", func() {
		w := post(`{"amount":40,"category":"Bills"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
	})

	It("should reject malformed JSON", func() {
		w := post(`{"amount":`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return validation details for a bad payload", func() {
		w := post(`{"amount":"0","category":"Food"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body map[string]map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body["error"]["type"]).To(Equal("VALIDATION_ERROR"))
		Expect(body["error"]["details"]).NotTo(BeNil())
	})

	It("should list expenses using query parameters", func() {
		post(`{"amount":"10","category":"Food","note":"Coffee run"}`)
		post(`{"amount":"50","category":"Transport"}`)
		post(`{"amount":"20","category":"Food","note":"Tea"}`)

		req := httptest.NewRequest(http.MethodGet, "/expenses?category=Food&sort=Highest", nil)
		w := httptest.NewRecorder()
		handler.ListExpenses(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp expense.ExpensesResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Count).To(Equal(2))
		Expect(resp.Expenses[0].Note).To(Equal("Tea"))
		Expect(resp.Expenses[1].Note).To(Equal("Coffee run"))
	})

	It("should return an empty array when nothing matches", func() {
		req := httptest.NewRequest(http.MethodGet, "/expenses?search=nothing", nil)
		w := httptest.NewRecorder()
		handler.ListExpenses(w, req)

		Expect(w.Body.String()).To(ContainSubstring(`"expenses":[]`))
	})

	Describe("ClearAll", func() {
		It("should report success", func() {
			post(`{"amount":"10","category":"Food"}`)

			req := httptest.NewRequest(http.MethodDelete, "/data", nil)
			w := httptest.NewRecorder()
			handler.ClearAll(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"cleared":true`))
			Expect(repo.Expenses()).To(BeEmpty())
		})

		It("should surface a storage failure as a 500", func() {
			st.removeErr = errors.New("locked")

			req := httptest.NewRequest(http.MethodDelete, "/data", nil).WithContext(context.Background())
			w := httptest.NewRecorder()
			handler.ClearAll(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(ContainSubstring("CLEAR_FAILED"))
		})
	})
})
