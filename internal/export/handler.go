package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	errors "github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/transport"
)

type ServiceAPI interface {
	Write(ctx context.Context, w io.Writer, format string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	now     func() time.Time
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		now:         time.Now,
	}
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, errors.ExportFormatCSV)
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, errors.ExportFormatXLSX)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, format string) {
	var buf bytes.Buffer
	if err := h.Service.Write(r.Context(), &buf, format); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", FileName(format, h.now())))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("export: failed to write response", "format", format, "error", err)
	}
}
