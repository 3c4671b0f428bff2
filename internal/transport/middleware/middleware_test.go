package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-tracker/internal/transport/middleware"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

var _ = Describe("RecoveryMiddleware", func() {
	It("should turn a panic into a 500 error body", func() {
		handler := middleware.RecoveryMiddleware(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/overview", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))

		var body map[string]map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body["error"]["code"]).To(Equal("INTERNAL_ERROR"))
		Expect(body["error"]["message"]).To(Equal("Internal server error"))
	})

	It("should let an aborted handler panic through", func() {
		handler := middleware.RecoveryMiddleware(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		Expect(func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		}).To(PanicWith(http.ErrAbortHandler))
	})

	It("should pass through when nothing panics", func() {
		handler := middleware.RecoveryMiddleware(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(w.Code).To(Equal(http.StatusNoContent))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	serve := func(status int, target string) {
		handler := middleware.LoggingMiddleware(logger.New(buf, "info", "text"))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("ok"))
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	It("should mask the note search term", func() {
		serve(http.StatusOK, "/api/v1/expenses?search=private+note&sort=Latest")

		Expect(buf.String()).To(ContainSubstring("search=redacted"))
		Expect(buf.String()).To(ContainSubstring("sort=Latest"))
		Expect(buf.String()).NotTo(ContainSubstring("private"))
	})

	It("should record status and size", func() {
		serve(http.StatusCreated, "/api/v1/expenses")

		Expect(buf.String()).To(ContainSubstring("level=INFO"))
		Expect(buf.String()).To(ContainSubstring("status_code=201"))
		Expect(buf.String()).To(ContainSubstring("response_size=2"))
	})

	It("should raise the level for client and server errors", func() {
		serve(http.StatusNotFound, "/missing")
		Expect(buf.String()).To(ContainSubstring("level=WARN"))

		buf.Reset()
		serve(http.StatusInternalServerError, "/api/v1/overview")
		Expect(buf.String()).To(ContainSubstring("level=ERROR"))
	})
})

var _ = Describe("RequestID", func() {
	It("should echo an incoming trace id into the context and response", func() {
		var seen string
		handler := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = logger.TraceID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.TraceIDHeader, "trace-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		Expect(seen).To(Equal("trace-123"))
		Expect(w.Header().Get(middleware.TraceIDHeader)).To(Equal("trace-123"))
	})

	It("should generate one when missing", func() {
		w := httptest.NewRecorder()
		middleware.RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(w.Header().Get(middleware.TraceIDHeader)).NotTo(BeEmpty())
	})
})
