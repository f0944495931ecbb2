package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"budgetwise/domain"
	"budgetwise/repository"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testState() domain.BudgetState {
	return domain.BudgetState{
		Income:    100000,
		ModelName: "qwen2.5:7b",
		Wishlist: []domain.WishlistItem{
			{ID: 1, Name: "Laptop", Cost: 120000},
		},
	}
}

func chatReply(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"message": map[string]string{"role": "assistant", "content": content},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return body
}

func TestAdvise_StructuredResponse(t *testing.T) {
	structured := `{"assessment":"Healthy.","strategies":[{"title":"Save","text":"Keep going"}],` +
		`"verdict":{"item":"Laptop","status":"Safe","color":"green","impact":"New Free Cash: ₹40000","advice":"Buy it"}}`

	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Write(chatReply(t, structured))
	}))
	defer server.Close()

	svc := NewAdvisorService(server.URL, repository.NewMockCache(), quietLogger())
	advice := svc.Advise(context.Background(), testState())

	if advice.Assessment != "Healthy." {
		t.Errorf("unexpected assessment: %q", advice.Assessment)
	}
	if len(advice.Strategies) != 1 {
		t.Errorf("expected one strategy, got %d", len(advice.Strategies))
	}
	if advice.Verdict == nil || advice.Verdict.Status != domain.VerdictSafe {
		t.Errorf("expected a Safe verdict, got %+v", advice.Verdict)
	}

	// The outgoing request must carry the fixed chat shape.
	if gotReq.Model != "qwen2.5:7b" || gotReq.Stream || gotReq.Format != "json" {
		t.Errorf("unexpected request shape: %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("expected system+user messages, got %+v", gotReq.Messages)
	}
}

func TestAdvise_NonJSONContentDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, "You are doing fine, keep saving."))
	}))
	defer server.Close()

	svc := NewAdvisorService(server.URL, repository.NewMockCache(), quietLogger())
	advice := svc.Advise(context.Background(), testState())

	if advice.Assessment != "You are doing fine, keep saving." {
		t.Errorf("raw content should become the assessment, got %q", advice.Assessment)
	}
	if len(advice.Strategies) != 0 || advice.Verdict != nil {
		t.Errorf("degraded advice must have no strategies or verdict: %+v", advice)
	}
}

func TestAdvise_TransportFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := NewAdvisorService(server.URL, repository.NewMockCache(), quietLogger())
	advice := svc.Advise(context.Background(), testState())

	if advice.Assessment != "Error connecting to AI." {
		t.Errorf("unexpected degraded assessment: %q", advice.Assessment)
	}
	if advice.Verdict != nil {
		t.Errorf("expected nil verdict on failure")
	}
}

func TestAdvise_NonOKStatusDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewAdvisorService(server.URL, repository.NewMockCache(), quietLogger())
	advice := svc.Advise(context.Background(), testState())

	if advice.Assessment != "Error connecting to AI." {
		t.Errorf("unexpected degraded assessment: %q", advice.Assessment)
	}
}

func TestAdvise_CacheHitSkipsModel(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write(chatReply(t, `{"assessment":"Cached fine.","strategies":[],"verdict":null}`))
	}))
	defer server.Close()

	svc := NewAdvisorService(server.URL, repository.NewMockCache(), quietLogger())
	state := testState()

	first := svc.Advise(context.Background(), state)
	second := svc.Advise(context.Background(), state)

	if calls != 1 {
		t.Errorf("expected exactly one model call, got %d", calls)
	}
	if first.Assessment != second.Assessment {
		t.Errorf("cached advice should match: %q vs %q", first.Assessment, second.Assessment)
	}
}
