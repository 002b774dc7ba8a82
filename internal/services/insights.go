package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arnold/nutritrack-api/internal/nutrition"
	"github.com/go-resty/resty/v2"
)

// ErrInsightsDisabled is returned when no API key is configured.
var ErrInsightsDisabled = errors.New("insight generation is not configured")

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// InsightService generates a short daily narrative from the computed
// totals and goals via the Gemini API.
type InsightService struct {
	apiKey string
	client *resty.Client
}

func NewInsightService(apiKey string) *InsightService {
	return &InsightService{
		apiKey: apiKey,
		client: resty.New().SetTimeout(20 * time.Second),
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate produces the daily insight text for a snapshot. Failures are
// returned to the caller as recoverable errors; nothing is cached here.
func (s *InsightService) Generate(ctx context.Context, snap nutrition.Snapshot) (string, error) {
	if s.apiKey == "" {
		return "", ErrInsightsDisabled
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildInsightPrompt(snap)}}}},
	}

	var parsed geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(body).
		SetResult(&parsed).
		Post(geminiEndpoint)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("Gemini API returned status %d", resp.StatusCode())
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("Gemini API returned no candidates")
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("Gemini API returned empty insight")
	}
	return text, nil
}

func buildInsightPrompt(snap nutrition.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly nutritionist. Summarize this person's day of eating in 3-4 short sentences: call out what is going well, the biggest gap, and one concrete food suggestion to close it.\n\n")
	sb.WriteString("TODAY'S INTAKE VS GOALS:\n")
	for _, goal := range snap.Goals {
		fmt.Fprintf(&sb, "- %s: %.1f of %.1f %s\n", goal.Label, snap.Totals[goal.Key], goal.Goal, goal.Unit)
	}
	fmt.Fprintf(&sb, "- Water: %.0f of %.0f ml\n", snap.Water, snap.WaterGoal)
	return sb.String()
}
