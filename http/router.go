package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every handler into the API surface. Only the advisory
// endpoint is rate limited; the rest is cheap local computation.
func NewRouter(
	budget *BudgetHandler,
	advisor *AdvisorHandler,
	tools *ToolsHandler,
	limiter *RateLimiter,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/income", budget.SetIncome).Methods(http.MethodPut)
	r.HandleFunc("/model", budget.SetModel).Methods(http.MethodPut)
	r.HandleFunc("/models", budget.ListModels).Methods(http.MethodGet)

	r.HandleFunc("/expenses", budget.AddExpense).Methods(http.MethodPost)
	r.HandleFunc("/expenses/{id}", budget.DeleteExpense).Methods(http.MethodDelete)
	r.HandleFunc("/goals", budget.AddGoal).Methods(http.MethodPost)
	r.HandleFunc("/goals/{id}", budget.DeleteGoal).Methods(http.MethodDelete)
	r.HandleFunc("/assets", budget.AddAsset).Methods(http.MethodPost)
	r.HandleFunc("/assets/{id}", budget.DeleteAsset).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist", budget.AddWishlistItem).Methods(http.MethodPost)
	r.HandleFunc("/wishlist/{id}", budget.DeleteWishlistItem).Methods(http.MethodDelete)

	r.HandleFunc("/snapshot", budget.GetSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/forecast", budget.GetForecast).Methods(http.MethodGet)
	r.HandleFunc("/simulate", budget.Simulate).Methods(http.MethodPost)

	r.HandleFunc("/state", budget.GetState).Methods(http.MethodGet)
	r.HandleFunc("/state", budget.RestoreState).Methods(http.MethodPut)

	r.HandleFunc("/tools/amortize", tools.Amortize).Methods(http.MethodPost)
	r.HandleFunc("/tools/future-value", tools.FutureValue).Methods(http.MethodPost)

	r.Handle(
		"/analyze",
		RateLimitMiddleware(limiter, http.HandlerFunc(advisor.Analyze)),
	).Methods(http.MethodPost)

	return r
}
