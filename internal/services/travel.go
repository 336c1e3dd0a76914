package services

import (
	"context"

	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

// TravelInstruction is the fixed system instruction for every query.
const TravelInstruction = "You are a travel planner, Cassandra, that collates all the current information about a given place " +
	"such as address details, current news, weather information and any related online result about the place. " +
	"Your response MUST have positive and negative points regarding travelling to the place along with your recommendation to travel or not. " +
	"Include top things to do or visit. " +
	"You MUST only respond precisely in 100 words."

type reasoningEngine interface {
	Invoke(ctx context.Context, req dto.AgentRequest) (string, error)
}

type travelService struct {
	engine reasoningEngine
	tools  []dto.Tool
}

func NewTravelService(engine reasoningEngine, tools []dto.Tool) *travelService {
	return &travelService{
		engine: engine,
		tools:  tools,
	}
}

// Answer runs the engine once for query. The answer is returned as produced;
// engine and tool errors are returned unchanged.
func (s *travelService) Answer(ctx context.Context, query string) (string, error) {
	log := logger.FromContext(ctx)

	answer, err := s.engine.Invoke(ctx, dto.AgentRequest{
		Instruction: TravelInstruction,
		Query:       query,
		Tools:       s.tools,
	})
	if err != nil {
		log.Error("travel answer failed", "error", err)
		return "", err
	}

	log.Debug("travel answer ready", "chars", len(answer))
	return answer, nil
}
