package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/port"
	"ppcsim/internal/report"
)

type runRequest struct {
	OwnerID   string `json:"owner_id"`
	StartDate string `json:"start_date"`
	Seed      *int64 `json:"seed,omitempty"`
}

func (rr runRequest) toPort() (port.RunReq, error) {
	req := port.RunReq{OwnerID: rr.OwnerID, Seed: rr.Seed}
	if rr.StartDate != "" {
		start, err := time.Parse(dateLayout, rr.StartDate)
		if err != nil {
			return req, err
		}
		req.StartDate = start
	}
	return req, nil
}

// runSummary is what the API returns for a stored run. Raw records stay in
// the database and are reachable through the stats endpoints.
type runSummary struct {
	RunID     uuid.UUID                `json:"run_id"`
	OwnerID   string                   `json:"owner_id"`
	StartDate string                   `json:"start_date"`
	Seed      int64                    `json:"seed"`
	Records   int                      `json:"records"`
	Skipped   []string                 `json:"skipped,omitempty"`
	Totals    domain.CampaignSummary   `json:"totals"`
	Campaigns []domain.CampaignSummary `json:"campaigns"`
}

func newRunSummary(resp *port.RunResp) runSummary {
	return runSummary{
		RunID:     resp.RunID,
		OwnerID:   resp.OwnerID,
		StartDate: resp.StartDate.Format(dateLayout),
		Seed:      resp.Seed,
		Records:   len(resp.Records),
		Skipped:   resp.Skipped,
		Totals:    report.Totals(resp.Records),
		Campaigns: report.SummarizeCampaigns(resp.Records),
	}
}

// handleRunSimulation advances one owner by a simulated week. The body
// carries owner_id, start_date (YYYY-MM-DD, defaults to today) and an
// optional seed. It answers 201 with the run summary.
func (h *Handler) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var body runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req, err := body.toPort()
	if err != nil {
		http.Error(w, "invalid 'start_date', want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.RunWeek(r.Context(), req)
	if err != nil {
		h.writeError(w, "run simulation error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newRunSummary(resp))
}

// handleRunBatch runs several owners in one call. It is all-or-error: the
// first failing owner aborts the batch, though runs already stored stay.
func (h *Handler) handleRunBatch(w http.ResponseWriter, r *http.Request) {
	var body []runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "empty batch", http.StatusBadRequest)
		return
	}
	reqs := make([]port.RunReq, 0, len(body))
	for _, b := range body {
		req, err := b.toPort()
		if err != nil {
			http.Error(w, "invalid 'start_date', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		reqs = append(reqs, req)
	}

	resps, err := h.svc.RunWeeks(r.Context(), reqs)
	if err != nil {
		h.writeError(w, "run batch error", err)
		return
	}
	out := make([]runSummary, 0, len(resps))
	for _, resp := range resps {
		out = append(out, newRunSummary(resp))
	}
	h.writeJSON(w, http.StatusCreated, out)
}
