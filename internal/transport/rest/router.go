package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-tracker/api"
	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/analytics"
	"github.com/frahmantamala/expense-tracker/internal/category"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/export"
	"github.com/frahmantamala/expense-tracker/internal/transport/middleware"
	"github.com/frahmantamala/expense-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes mounts every handler under /api/v1. validator may be nil,
// in which case requests are not checked against the OpenAPI document.
func RegisterAllRoutes(router *chi.Mux, healthHandler *HealthHandler, expenseHandler *expense.Handler, categoryHandler *category.Handler, analyticsHandler *analytics.Handler, exportHandler *export.Handler, validator func(http.Handler) http.Handler, logger *slog.Logger) {
	// Apply global middleware
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.NotFound(notFoundHandler)

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(api.OpenAPI)
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match the OpenAPI paths
	router.Route("/api/v1", func(r chi.Router) {
		if validator != nil {
			r.Use(validator)
		}

		// Health check route
		if healthHandler != nil {
			r.Get("/health", healthHandler.healthCheckHandler)
			r.Get("/ping", healthHandler.pingHandler)
		}

		if expenseHandler != nil {
			r.Route("/expenses", func(er chi.Router) {
				er.Get("/", expenseHandler.ListExpenses)   // GET /expenses
				er.Post("/", expenseHandler.CreateExpense) // POST /expenses
			})
			r.Delete("/data", expenseHandler.ClearAll) // DELETE /data
		}

		if categoryHandler != nil {
			r.Get("/categories", categoryHandler.GetCategories)
			r.Post("/categories", categoryHandler.CreateCategory)
		}

		if analyticsHandler != nil {
			r.Get("/overview", analyticsHandler.GetOverview)
			r.Get("/charts/weekly", analyticsHandler.GetWeeklyChart)
			r.Get("/charts/categories", analyticsHandler.GetCategoryChart)
		}

		if exportHandler != nil {
			r.Get("/export.csv", exportHandler.ExportCSV)
			r.Get("/export.xlsx", exportHandler.ExportXLSX)
		}
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	appErr := internal.NewNotFoundError("route "+r.Method+" "+r.URL.Path+" not found", internal.ErrCodeRouteNotFound)
	status, body := appErr.ToHTTPResponse()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
