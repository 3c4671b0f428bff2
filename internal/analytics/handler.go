package analytics

import (
	"context"
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal/transport"
)

type ServiceAPI interface {
	Overview(ctx context.Context) Totals
	WeeklyChart(ctx context.Context) []DailyTotal
	CategoryChart(ctx context.Context) []CategoryTotal
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

type WeeklyChartResponse struct {
	Days []DailyTotal `json:"days"`
}

type CategoryChartResponse struct {
	Categories []CategoryTotal `json:"categories"`
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Overview(r.Context()))
}

func (h *Handler) GetWeeklyChart(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, WeeklyChartResponse{Days: h.Service.WeeklyChart(r.Context())})
}

func (h *Handler) GetCategoryChart(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, CategoryChartResponse{Categories: h.Service.CategoryChart(r.Context())})
}
