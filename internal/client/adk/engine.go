package adkclient

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
	"google.golang.org/genai"

	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/pkg/helpers"
	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

const (
	appName   = "travel"
	agentName = "travel_agent"
	userID    = "traveller"
)

type placeArgs struct {
	Place string `json:"place" jsonschema:"name of the city or place"`
}

// Engine runs each request through a fresh ADK agent and session. The
// model is the only state shared between invocations.
type Engine struct {
	model model.LLM
}

func NewEngine(m model.LLM) *Engine {
	return &Engine{model: m}
}

// toolFailure keeps the first error returned by a tool during one run.
type toolFailure struct {
	mu  sync.Mutex
	err error
}

func (f *toolFailure) record(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
}

func (f *toolFailure) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (e *Engine) Invoke(ctx context.Context, req dto.AgentRequest) (string, error) {
	failure := &toolFailure{}

	tools := make([]tool.Tool, 0, len(req.Tools))
	for _, t := range req.Tools {
		ft, err := placeTool(t, failure)
		if err != nil {
			return "", err
		}
		tools = append(tools, ft)
	}

	ag, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       e.model,
		Description: "Answers travel questions about a place.",
		Instruction: req.Instruction,
		Tools:       tools,
	})
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	sessions := session.InMemoryService()
	run, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          ag,
		SessionService: sessions,
	})
	if err != nil {
		return "", fmt.Errorf("create runner: %w", err)
	}

	sessionID := uuid.New().String()
	if _, err := sessions.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: sessionID,
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	defer func() {
		_ = sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   appName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	// The last complete agent event is the answer.
	var answer string
	var runErr error
	stream := run.Run(ctx, userID, sessionID, genai.NewContentFromText(req.Query, genai.RoleUser), agent.RunConfig{})
	for event, err := range stream {
		// A failed tool ends the run.
		if failure.get() != nil {
			break
		}
		if err != nil {
			if runErr == nil {
				runErr = err
			}
			continue
		}
		if event == nil || event.Author != agentName || event.LLMResponse.Partial {
			continue
		}
		if content := event.LLMResponse.Content; content != nil {
			answer = eventText(content)
		}
	}

	if err := failure.get(); err != nil {
		return "", err
	}
	if runErr != nil {
		return "", runErr
	}
	return answer, nil
}

func eventText(content *genai.Content) string {
	var b strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func placeTool(t dto.Tool, failure *toolFailure) (tool.Tool, error) {
	ft, err := functiontool.New(functiontool.Config{
		Name:        t.Name(),
		Description: t.Description(),
	}, func(tc tool.Context, args placeArgs) (map[string]any, error) {
		log, ctx := logger.With(tc, "tool", t.Name(), "place", args.Place)
		log.Debug("tool call")

		body, err := t.Fetch(ctx, args.Place)
		if err != nil {
			log.Warn("tool call failed", "error", err)
			failure.record(err)
			return nil, err
		}
		return helpers.PayloadMap(body), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create tool %s: %w", t.Name(), err)
	}
	return ft, nil
}
