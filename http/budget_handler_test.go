package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"budgetwise/domain"
	"budgetwise/repository"
	"budgetwise/service"
)

func newTestRouter(t *testing.T, advisorURL string) http.Handler {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	budgetService, err := service.NewBudgetService(repository.NewMemoryStore(), logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	advisorService := service.NewAdvisorService(advisorURL, repository.NewMockCache(), logger)

	limiter := NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(
		NewBudgetHandler(budgetService),
		NewAdvisorHandler(advisorService, budgetService),
		NewToolsHandler(),
		limiter,
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddExpense_OK(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	w := doJSON(t, router, http.MethodPost, "/expenses", `{
		"name": "Car Loan",
		"type": "Loan",
		"principal": 500000,
		"rate": 10,
		"tenureMonths": 60
	}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created domain.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Amount != 10624 {
		t.Errorf("expected server-computed installment 10624, got %.0f", created.Amount.Value())
	}
}

func TestAddExpense_BadRequest(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	if w := doJSON(t, router, http.MethodPost, "/expenses", `{invalid-json}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/expenses", `{"amount": 100}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing name, got %d", w.Code)
	}
}

func TestAddExpense_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	if w := doJSON(t, router, http.MethodGet, "/expenses", ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestDeleteExpense(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	w := doJSON(t, router, http.MethodPost, "/expenses", `{"name":"Rent","amount":15000}`)
	var created domain.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := "/expenses/" + jsonInt(created.ID)
	if w := doJSON(t, router, http.MethodDelete, path, ""); w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodDelete, path, ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for second delete, got %d", w.Code)
	}
}

func TestSnapshotAndForecast(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	doJSON(t, router, http.MethodPut, "/income", `{"amount": 100000}`)
	doJSON(t, router, http.MethodPost, "/expenses", `{"name":"Rent","amount":30000}`)
	doJSON(t, router, http.MethodPost, "/goals", `{"name":"Fund","monthlyContribution":10000}`)

	w := doJSON(t, router, http.MethodGet, "/snapshot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var snap domain.FinancialSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.FreeCash != 60000 {
		t.Errorf("expected free cash 60000, got %.0f", snap.FreeCash)
	}

	w = doJSON(t, router, http.MethodGet, "/forecast", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var points []domain.ForecastPoint
	if err := json.Unmarshal(w.Body.Bytes(), &points); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 12 || points[11].StatusQuoCumulative != 12*60000 {
		t.Errorf("unexpected forecast: %d points", len(points))
	}
}

func TestSimulateEndpoint(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	doJSON(t, router, http.MethodPut, "/income", `{"amount": 100000}`)
	doJSON(t, router, http.MethodPost, "/expenses", `{"name":"Rent","amount":40000}`)

	w := doJSON(t, router, http.MethodPost, "/simulate", `{"incomeChangePct": 50, "expenseChangePct": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result domain.SimulationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SimulatedIncome != 150000 {
		t.Errorf("expected simulated income 150000, got %.0f", result.SimulatedIncome)
	}
}

func TestStateBackupRestore(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	doJSON(t, router, http.MethodPut, "/income", `{"amount": 75000}`)

	w := doJSON(t, router, http.MethodGet, "/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	backup := w.Body.String()

	// Restore into a fresh instance and check the income survived.
	fresh := newTestRouter(t, "http://localhost:0")
	if w := doJSON(t, fresh, http.MethodPut, "/state", backup); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on restore, got %d", w.Code)
	}
	w = doJSON(t, fresh, http.MethodGet, "/snapshot", "")
	var snap domain.FinancialSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.MonthlySurplus != 75000 {
		t.Errorf("expected restored surplus 75000, got %.0f", snap.MonthlySurplus)
	}
}

func TestModelsEndpoints(t *testing.T) {
	router := newTestRouter(t, "http://localhost:0")

	w := doJSON(t, router, http.MethodGet, "/models", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var models []domain.ModelInfo
	if err := json.Unmarshal(w.Body.Bytes(), &models); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) == 0 {
		t.Fatalf("expected a non-empty model catalog")
	}

	if w := doJSON(t, router, http.MethodPut, "/model", `{"model":"`+models[0].ID+`"}`); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPut, "/model", `{"model":"nope"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown model, got %d", w.Code)
	}
}

func jsonInt(v int64) string {
	data, _ := json.Marshal(v)
	return string(data)
}
