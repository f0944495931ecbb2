package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"budgetwise/domain"
	"budgetwise/service"
)

type BudgetHandler struct {
	service *service.BudgetService
}

func NewBudgetHandler(service *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

func (h *BudgetHandler) SetIncome(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount domain.Amount `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.service.SetIncome(body.Amount.Value())
	writeJSON(w, http.StatusOK, map[string]float64{"income": body.Amount.Value()})
}

func (h *BudgetHandler) SetModel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Model string `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.service.SetModel(body.Model); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"model": body.Model})
}

func (h *BudgetHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.Models)
}

func (h *BudgetHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.service.AddExpense(e)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BudgetHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.service.DeleteExpense)
}

func (h *BudgetHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var g domain.Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.service.AddGoal(g)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BudgetHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.service.DeleteGoal)
}

func (h *BudgetHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var a domain.Asset
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.service.AddAsset(a)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BudgetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.service.DeleteAsset)
}

func (h *BudgetHandler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	var item domain.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.service.AddWishlistItem(item)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BudgetHandler) DeleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.service.DeleteWishlistItem)
}

func (h *BudgetHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Snapshot())
}

func (h *BudgetHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Forecast())
}

func (h *BudgetHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var in domain.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Simulate(in))
}

// GetState exports the full budget state as a backup document.
func (h *BudgetHandler) GetState(w http.ResponseWriter, r *http.Request) {
	doc := struct {
		domain.BudgetState
		Version string `json:"version"`
		Date    string `json:"date"`
	}{
		BudgetState: h.service.State(),
		Version:     "1.0",
		Date:        time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, doc)
}

// RestoreState replaces the budget state wholesale from a backup document.
func (h *BudgetHandler) RestoreState(w http.ResponseWriter, r *http.Request) {
	var state domain.BudgetState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, "invalid backup file", http.StatusBadRequest)
		return
	}
	if err := h.service.ReplaceState(state); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (h *BudgetHandler) deleteByID(w http.ResponseWriter, r *http.Request, del func(int64) error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := del(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
