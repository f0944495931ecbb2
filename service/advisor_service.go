package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"budgetwise/domain"
	"budgetwise/repository"
)

const (
	advisorSystemPrompt = "Output valid JSON only. Speak English."
	adviceCacheTTL      = 15 * time.Minute
)

// AdvisorService packages a financial snapshot into a chat request for a
// locally running model and parses the reply into structured advice. It never
// returns an error to the caller: transport or parse failures degrade into an
// Advice carrying only raw text.
type AdvisorService struct {
	chatURL    string
	httpClient *http.Client
	cache      repository.CacheRepository
	logger     *logrus.Logger
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

func NewAdvisorService(chatURL string, cache repository.CacheRepository, logger *logrus.Logger) *AdvisorService {
	return &AdvisorService{
		chatURL: chatURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cache:  cache,
		logger: logger,
	}
}

// Advise runs one advisory round trip: exactly one attempt, bounded by the
// client timeout and the caller's context. Identical requests within the
// cache TTL are served from cache without touching the model.
func (s *AdvisorService) Advise(ctx context.Context, state domain.BudgetState) domain.Advice {
	snap := Snapshot(state)
	prompt := buildPrompt(state, snap)
	key := cacheKey(state.ModelName, prompt)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var advice domain.Advice
		if err := json.Unmarshal([]byte(cached), &advice); err == nil {
			return advice
		}
	}

	content, err := s.callModel(ctx, state.ModelName, prompt)
	if err != nil {
		s.logger.Warnf("advisory call failed: %v", err)
		return domain.Advice{
			Assessment: "Error connecting to AI.",
			Strategies: []domain.Strategy{},
		}
	}

	advice := parseAdvice(content)
	if data, err := json.Marshal(advice); err == nil {
		if err := s.cache.Set(ctx, key, string(data), adviceCacheTTL); err != nil {
			s.logger.Warnf("failed to cache advice: %v", err)
		}
	}
	return advice
}

func (s *AdvisorService) callModel(ctx context.Context, model, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: advisorSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream: false,
		Format: "json",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.chatURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("model endpoint error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if chatResp.Message.Content == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return chatResp.Message.Content, nil
}

// parseAdvice tries to read the model's content as structured advice. Content
// that is not the expected JSON becomes the assessment verbatim.
func parseAdvice(content string) domain.Advice {
	var advice domain.Advice
	if err := json.Unmarshal([]byte(content), &advice); err != nil || advice.Assessment == "" {
		return domain.Advice{
			Assessment: content,
			Strategies: []domain.Strategy{},
		}
	}
	if advice.Strategies == nil {
		advice.Strategies = []domain.Strategy{}
	}
	return advice
}

func buildPrompt(state domain.BudgetState, snap domain.FinancialSnapshot) string {
	items := make([]string, 0, len(state.Wishlist))
	for _, w := range state.Wishlist {
		items = append(items, fmt.Sprintf("%s (₹%.0f)", w.Name, w.Cost.Value()))
	}
	firstItem := "Item"
	if len(state.Wishlist) > 0 {
		firstItem = state.Wishlist[0].Name
	}

	return fmt.Sprintf(`You are a strictly English-speaking financial advisor.

Financial Data:
- Net Income: ₹%.0f
- Fixed Expenses: ₹%.0f
- Savings Goals: ₹%.0f
- True Free Cash: ₹%.0f
- Total Assets: ₹%.0f
- Total Liabilities: ₹%.0f
- Net Worth: ₹%.0f

Wishlist Items: %s

TASK: Return JSON.
1. Analyze Net Worth (Positive/Negative).
2. Analyze Free Cash flow.
3. Give advice on the Wishlist item based on this context.

Structure:
{
  "assessment": "Summary of financial health in English.",
  "strategies": [
    { "title": "Strategy Title", "text": "Advice in English" },
    { "title": "Strategy Title", "text": "Advice in English" }
  ],
  "verdict": {
    "item": "%s",
    "status": "Safe" or "Risky",
    "color": "green" or "red",
    "impact": "New Free Cash: ₹%.0f",
    "advice": "Advice in English"
  }
}`,
		state.Income.Value(), snap.TotalFixedOutflow, snap.TotalGoalContribution,
		snap.FreeCash, snap.TotalAssets, snap.TotalLiabilities, snap.NetWorth,
		strings.Join(items, ", "), firstItem, snap.PostPurchaseFreeCash)
}

func cacheKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\n" + prompt))
	return "advice:" + hex.EncodeToString(sum[:])
}
