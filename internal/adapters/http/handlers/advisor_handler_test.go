package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/analytics"
	"github.com/jsamuelsen11/moneygoal/internal/domain/chat"
	"github.com/jsamuelsen11/moneygoal/internal/domain/goal"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

// --- Chat ---

func TestSendMessage_ReturnsReply(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockChatService(t)
	svc.EXPECT().SendMessage(mock.Anything, testUserID, "Can I afford a new laptop?").Return(&chat.Message{
		ID: 2, UserID: testUserID, Role: chat.RoleAssistant, Content: "Yes, if you wait two months.", CreatedAt: testTime,
	}, nil)

	h := handlers.NewChatHandler(svc)
	body := jsonBody(t, dto.ChatRequest{Message: "Can I afford a new laptop?"})

	rec := httptest.NewRecorder()
	h.SendMessage(rec, authedRequest(http.MethodPost, "/api/v1/chat/messages", body))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ChatMessageResponse](t, rec)
	if resp.Role != "assistant" || resp.Content != "Yes, if you wait two months." {
		t.Errorf("response = %+v", resp)
	}
}

func TestSendMessage_AdvisorUnavailable(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockChatService(t)
	svc.EXPECT().SendMessage(mock.Anything, testUserID, mock.Anything).Return(nil, domain.ErrUnavailable)

	h := handlers.NewChatHandler(svc)
	rec := httptest.NewRecorder()
	h.SendMessage(rec, authedRequest(http.MethodPost, "/api/v1/chat/messages", jsonBody(t, dto.ChatRequest{Message: "hi"})))

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestHistoryAndClear(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockChatService(t)
	svc.EXPECT().History(mock.Anything, testUserID, 20).Return([]chat.Message{
		{ID: 1, Role: chat.RoleUser, Content: "hi", CreatedAt: testTime},
		{ID: 2, Role: chat.RoleAssistant, Content: "hello", CreatedAt: testTime},
	}, nil)
	svc.EXPECT().Clear(mock.Anything, testUserID).Return(nil)

	h := handlers.NewChatHandler(svc)

	rec := httptest.NewRecorder()
	h.History(rec, authedRequest(http.MethodGet, "/api/v1/chat/messages?limit=20", nil))
	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ChatHistoryResponse](t, rec); resp.Count != 2 || resp.Messages[0].Role != "user" {
		t.Errorf("history = %+v", resp)
	}

	rec = httptest.NewRecorder()
	h.Clear(rec, authedRequest(http.MethodDelete, "/api/v1/chat/messages", nil))
	requireStatus(t, rec, http.StatusNoContent)
}

// --- Analytics ---

func TestSummary_ExplicitRange(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	svc := mocks.NewMockAnalyticsService(t)
	svc.EXPECT().Summary(mock.Anything, testUserID, from, to).Return(&analytics.Summary{
		Currency:    "USD",
		Income:      decimal.RequireFromString("3000"),
		Expense:     decimal.RequireFromString("2250.5"),
		Net:         decimal.RequireFromString("749.5"),
		SavingsRate: 24.98,
		Count:       31,
	}, nil)

	h := handlers.NewAnalyticsHandler(svc)
	rec := httptest.NewRecorder()
	h.Summary(rec, authedRequest(http.MethodGet, "/api/v1/analytics/summary?from=2026-01-01&to=2026-01-31", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummaryResponse](t, rec)
	if resp.From != "2026-01-01" || resp.To != "2026-01-31" || resp.Expense != "2250.50" || resp.Net != "749.50" {
		t.Errorf("response = %+v", resp)
	}
}

func TestSummary_DefaultsToMonthToDate(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAnalyticsService(t)
	svc.EXPECT().Summary(mock.Anything, testUserID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, from, to time.Time) (*analytics.Summary, error) {
			if from.Day() != 1 || to.Before(from) {
				t.Errorf("range = %s..%s, want month start to today", from, to)
			}
			return &analytics.Summary{Currency: "USD"}, nil
		})

	h := handlers.NewAnalyticsHandler(svc)
	rec := httptest.NewRecorder()
	h.Summary(rec, authedRequest(http.MethodGet, "/api/v1/analytics/summary", nil))

	requireStatus(t, rec, http.StatusOK)
}

func TestAnalytics_InvalidRange(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAnalyticsService(t)
	h := handlers.NewAnalyticsHandler(svc)

	rec := httptest.NewRecorder()
	h.SpendingByCategory(rec, authedRequest(http.MethodGet, "/api/v1/analytics/spending?from=2026-02-01&to=2026-01-01", nil))
	requireStatus(t, rec, http.StatusBadRequest)

	rec = httptest.NewRecorder()
	h.MonthlyTrend(rec, authedRequest(http.MethodGet, "/api/v1/analytics/trend?months=many", nil))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestMonthlyTrend(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAnalyticsService(t)
	svc.EXPECT().MonthlyTrend(mock.Anything, testUserID, 3).Return([]analytics.MonthTotal{
		{Month: "2025-12", Income: decimal.NewFromInt(100), Expense: decimal.NewFromInt(40), Net: decimal.NewFromInt(60)},
		{Month: "2026-01", Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero},
		{Month: "2026-02", Income: decimal.NewFromInt(10), Expense: decimal.NewFromInt(20), Net: decimal.NewFromInt(-10)},
	}, nil)

	h := handlers.NewAnalyticsHandler(svc)
	rec := httptest.NewRecorder()
	h.MonthlyTrend(rec, authedRequest(http.MethodGet, "/api/v1/analytics/trend?months=3", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TrendResponse](t, rec)
	if len(resp.Months) != 3 || resp.Months[2].Net != "-10.00" {
		t.Errorf("trend = %+v", resp)
	}
}

func TestGoalForecast(t *testing.T) {
	t.Parallel()

	projected := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	svc := mocks.NewMockAnalyticsService(t)
	svc.EXPECT().GoalForecast(mock.Anything, testUserID, int64(1)).Return(&ports.GoalForecast{
		Goal: validGoal(),
		Forecast: goal.Forecast{
			MonthlyContribution: decimal.RequireFromString("500"),
			MonthsRemaining:     8,
			ProjectedDate:       &projected,
			RequiredMonthly:     decimal.RequireFromString("375"),
			OnTrack:             true,
		},
	}, nil)

	h := handlers.NewAnalyticsHandler(svc)
	req := withChiParams(authedRequest(http.MethodGet, "/api/v1/analytics/goals/1/forecast", nil), map[string]string{"id": "1"})

	rec := httptest.NewRecorder()
	h.GoalForecast(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ForecastResponse](t, rec)
	if !resp.OnTrack || resp.RequiredMonthly != "375.00" || resp.Narrative != "" {
		t.Errorf("forecast = %+v", resp)
	}
}
