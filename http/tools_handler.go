package http

import (
	"encoding/json"
	"net/http"

	"budgetwise/domain"
	"budgetwise/service"
)

// ToolsHandler exposes the two leaf calculators as standalone endpoints.
type ToolsHandler struct{}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

func (h *ToolsHandler) Amortize(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Principal  domain.Amount `json:"principal"`
		Rate       domain.Amount `json:"rate"`
		TermMonths int           `json:"termMonths"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	installment, err := service.Amortize(body.Principal.Value(), body.Rate.Value(), body.TermMonths)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	total := installment * float64(body.TermMonths)
	writeJSON(w, http.StatusOK, map[string]float64{
		"monthlyInstallment": installment,
		"totalPayment":       total,
		"totalInterest":      total - body.Principal.Value(),
	})
}

func (h *ToolsHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Principal domain.Amount `json:"principal"`
		Rate      *float64      `json:"rate"`
		Years     *float64      `json:"years"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	rate := service.DefaultGrowthRatePct
	if body.Rate != nil {
		rate = *body.Rate
	}
	years := service.DefaultHorizonYears
	if body.Years != nil {
		years = *body.Years
	}
	fv, err := service.FutureValue(body.Principal.Value(), rate, years)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"futureValue": fv})
}
