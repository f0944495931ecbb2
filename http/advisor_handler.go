package http

import (
	"net/http"

	"budgetwise/service"
)

type AdvisorHandler struct {
	advisor *service.AdvisorService
	budget  *service.BudgetService
}

func NewAdvisorHandler(advisor *service.AdvisorService, budget *service.BudgetService) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor, budget: budget}
}

// Analyze runs the advisory bridge over the current state. Degraded results
// are still a 200: the bridge never surfaces a failure to the client.
func (h *AdvisorHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	advice := h.advisor.Advise(r.Context(), h.budget.State())
	writeJSON(w, http.StatusOK, advice)
}
