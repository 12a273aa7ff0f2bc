package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-board-keeper/internal/utils"
)

func (h *Handler) topHeadlines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	var pageSize int
	if size, err := strconv.Atoi(query.Get("pageSize")); err == nil {
		pageSize = size
	}

	headlines, err := h.services.NewsService.TopHeadlines(ctx, query.Get("country"), query.Get("category"), pageSize)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, headlines, http.StatusOK)
}
