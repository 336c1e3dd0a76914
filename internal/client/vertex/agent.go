package vertexclient

import (
	"context"
	"fmt"

	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/internal/errs"
	"github.com/GregMSThompson/travel-backend/pkg/helpers"
	"github.com/GregMSThompson/travel-backend/pkg/logger"
)

const DefaultMaxRounds = 5

type generator interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

// Agent runs a bounded function-calling exchange with the model: every
// reply carrying function calls is answered with the tool output, until the
// model replies with text.
type Agent struct {
	gen       generator
	maxRounds int
}

func NewAgent(gen generator, maxRounds int) *Agent {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Agent{gen: gen, maxRounds: maxRounds}
}

func (a *Agent) Invoke(ctx context.Context, req dto.AgentRequest) (string, error) {
	log := logger.FromContext(ctx)

	tools := make(map[string]dto.Tool, len(req.Tools))
	decls := make([]dto.VertexTool, 0, len(req.Tools))
	for _, t := range req.Tools {
		tools[t.Name()] = t
		decls = append(decls, placeDeclaration(t))
	}

	contents := []dto.VertexContent{
		{Role: "user", Parts: []dto.VertexPart{{Text: helpers.Ptr(req.Query)}}},
	}

	for round := 0; ; round++ {
		resp, err := a.gen.GenerateContent(ctx, dto.VertexGenerateRequest{
			System:   req.Instruction,
			Contents: contents,
			Tools:    decls,
		})
		if err != nil {
			return "", err
		}
		if len(resp.ToolCalls) == 0 {
			return resp.Text, nil
		}
		if round >= a.maxRounds {
			return "", errs.NewToolRoundsExceededError(a.maxRounds)
		}

		callParts := make([]dto.VertexPart, 0, len(resp.ToolCalls))
		resultParts := make([]dto.VertexPart, 0, len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			tool, ok := tools[call.Name]
			if !ok {
				return "", errs.NewUnknownToolError(call.Name)
			}

			place := placeArg(call.Args)
			log.Debug("tool call", "tool", call.Name, "place", place, "round", round+1)
			body, err := tool.Fetch(ctx, place)
			if err != nil {
				return "", err
			}

			callParts = append(callParts, dto.VertexPart{FunctionCall: helpers.Ptr(call)})
			resultParts = append(resultParts, dto.VertexPart{FunctionResponse: &dto.VertexToolResult{
				Name:     call.Name,
				Response: helpers.PayloadMap(body),
			}})
		}

		contents = append(contents,
			dto.VertexContent{Role: "model", Parts: callParts},
			dto.VertexContent{Role: "user", Parts: resultParts},
		)
	}
}

func placeDeclaration(t dto.Tool) dto.VertexTool {
	return dto.VertexTool{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &dto.VertexSchema{
			Type: "object",
			Properties: map[string]*dto.VertexSchema{
				"place": {Type: "string", Description: "Name of the city or place."},
			},
			Required: []string{"place"},
		},
	}
}

func placeArg(args map[string]any) string {
	switch v := args["place"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
