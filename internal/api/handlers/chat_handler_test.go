package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"support-desk/internal/dto"
	"support-desk/internal/models"
	"support-desk/internal/service"
	"support-desk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedGenerator answers every classification with "routine" and every
// free-form request with a fixed resolution.
type cannedGenerator struct {
	resolution string
}

func (g *cannedGenerator) Generate(_ context.Context, _ models.Tier, _ models.Transcript) (string, error) {
	return g.resolution, nil
}

func (g *cannedGenerator) ClassifySensitive(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.Get()

	generalRecords := []models.KnowledgeRecord{
		{Question: "What are your store hours?", Answer: "9am-5pm daily"},
	}
	seniorRecords := []models.KnowledgeRecord{
		{Question: "I want to dispute a charge on my account.", Answer: "Our billing team will review the charge and respond within 2 business days."},
	}

	gen := &cannedGenerator{
		resolution: "Thanks for flagging this; a senior agent will follow up with a full resolution shortly.",
	}

	matcher := service.NewKBMatcher(log)
	tools := service.NewKBDispatcher(matcher, generalRecords, seniorRecords, log)
	orchestrator := service.NewOrchestrator(
		service.NewGeneralResponder(tools, gen, log),
		service.NewSeniorResponder(tools, gen, log),
		time.Second,
		log,
	)
	chatService := service.NewChatService(orchestrator, service.NewResponseSelector(), log)

	app := fiber.New()
	app.Post("/chat", NewChatHandler(chatService, log).Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body []byte) (int, dto.ChatResponse) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed dto.ChatResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestChatEndpointDirectAnswer(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(dto.ChatRequest{Message: "What are your store hours?"})
	status, resp := postChat(t, app, body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "9am-5pm daily", resp.Response)
}

func TestChatEndpointEscalatedAnswer(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(dto.ChatRequest{Message: "I want to dispute a charge on my account."})
	status, resp := postChat(t, app, body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Our billing team will review the charge and respond within 2 business days.", resp.Response)
}

func TestChatEndpointAlwaysAnswers200(t *testing.T) {
	app := newTestApp(t)

	status, resp := postChat(t, app, []byte("{not json"))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp.Response, "An error occurred")
}
