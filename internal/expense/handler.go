package expense

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal/transport"
)

type ServiceAPI interface {
	CreateExpense(ctx context.Context, dto CreateExpenseDTO) (*Expense, error)
	ListExpenses(ctx context.Context, q Query) []Expense
	ClearAll(ctx context.Context) error
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

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := h.Service.CreateExpense(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, expense)
}

// ListExpenses reads category, search and sort from the query string.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := Query{
		Category: params.Get("category"),
		Search:   params.Get("search"),
		Sort:     SortMode(params.Get("sort")),
	}

	expenses := h.Service.ListExpenses(r.Context(), q)
	h.WriteJSON(w, http.StatusOK, ExpensesResponse{
		Expenses: expenses,
		Count:    len(expenses),
	})
}

func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ClearAll(r.Context()); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ClearAll: all data cleared")
	h.WriteJSON(w, http.StatusOK, ClearResponse{Cleared: true})
}
