package httpadapter

import (
	"net/http"
	"time"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/port"
)

// handleCampaignStats returns per-campaign aggregates for an owner. It
// requires `owner_id` and accepts optional inclusive `from` and `to` dates
// (YYYY-MM-DD). Invalid parameters result in HTTP 400.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     = port.SummaryReq{OwnerID: q.Get("owner_id")}
		err     error
	)

	if req.OwnerID == "" {
		http.Error(w, "missing 'owner_id'", http.StatusBadRequest)
		return
	}
	if fromStr != "" {
		req.From, err = time.Parse(dateLayout, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' date", http.StatusBadRequest)
			return
		}
	}
	if toStr != "" {
		req.To, err = time.Parse(dateLayout, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' date", http.StatusBadRequest)
			return
		}
	}
	if !req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From) {
		http.Error(w, "'to' is before 'from'", http.StatusBadRequest)
		return
	}

	rows, err := h.svc.GetCampaignSummaries(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats error", err)
		return
	}
	if rows == nil {
		rows = []domain.CampaignSummary{}
	}
	h.writeJSON(w, http.StatusOK, rows)
}
