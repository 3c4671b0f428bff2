package category_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/expense-tracker/internal/category"
	"github.com/frahmantamala/expense-tracker/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Category Handler", func() {
	var (
		handler *category.Handler
		slogger *slog.Logger
	)

	BeforeEach(func() {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := category.NewService(NewMockRegistry(), slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = category.NewHandler(baseHandler, service)
	})

	create := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.CreateCategory(w, req)
		return w
	}

	It("should handle GET /categories request successfully", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response category.CategoriesResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		Expect(err).NotTo(HaveOccurred())
		Expect(response.Categories).To(Equal([]string{"Food", "Transport", "Shopping", "Bills", "Other"}))
	})

	It("should return 201 for a new category", func() {
		w := create(`{"name":"Travel"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var response category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response).To(Equal(category.CategoryResponse{Name: "Travel", Added: true}))
	})

	It("should return 200 for an existing category", func() {
		w := create(`{"name":"Food"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"added":false`))
	})

	It("should return 400 for an empty name", func() {
		w := create(`{"name":""}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("VALIDATION_ERROR"))
	})

	It("should return 400 for malformed JSON", func() {
		w := create(`not json`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
