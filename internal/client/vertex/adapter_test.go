package vertexclient

import (
	"testing"

	"cloud.google.com/go/vertexai/genai"

	"github.com/GregMSThompson/travel-backend/internal/dto"
	"github.com/GregMSThompson/travel-backend/pkg/helpers"
)

func TestToGenaiContents(t *testing.T) {
	contents := toGenaiContents([]dto.VertexContent{
		{Role: "user", Parts: []dto.VertexPart{{Text: helpers.Ptr("Lisbon?")}}},
		{Role: "model", Parts: []dto.VertexPart{{FunctionCall: &dto.VertexToolCall{Name: "weather_tool", Args: map[string]any{"place": "Lisbon"}}}}},
		{Role: "user", Parts: []dto.VertexPart{{FunctionResponse: &dto.VertexToolResult{Name: "weather_tool", Response: map[string]any{"temp": 22}}}}},
	})

	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if text, ok := contents[0].Parts[0].(genai.Text); !ok || string(text) != "Lisbon?" {
		t.Fatalf("text part mismatch: %#v", contents[0].Parts[0])
	}
	if call, ok := contents[1].Parts[0].(genai.FunctionCall); !ok || call.Name != "weather_tool" {
		t.Fatalf("call part mismatch: %#v", contents[1].Parts[0])
	}
	if contents[1].Role != "model" {
		t.Fatalf("role mismatch: %q", contents[1].Role)
	}
	if res, ok := contents[2].Parts[0].(genai.FunctionResponse); !ok || res.Response["temp"] != 22 {
		t.Fatalf("response part mismatch: %#v", contents[2].Parts[0])
	}
}

func TestParseContentResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text("Pack "),
				genai.Text("light."),
				genai.FunctionCall{Name: "news_tool", Args: map[string]any{"place": "Lisbon"}},
			}},
		}},
	}

	text, calls := parseContentResponse(resp)
	if text != "Pack light." {
		t.Fatalf("text mismatch: %q", text)
	}
	if len(calls) != 1 || calls[0].Name != "news_tool" || calls[0].Args["place"] != "Lisbon" {
		t.Fatalf("calls mismatch: %+v", calls)
	}

	if text, calls := parseContentResponse(nil); text != "" || calls != nil {
		t.Fatalf("nil response should be empty")
	}
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(&dto.VertexSchema{
		Type:       "object",
		Properties: map[string]*dto.VertexSchema{"place": {Type: "string"}},
		Required:   []string{"place"},
	})
	if s.Type != genai.TypeObject || s.Properties["place"].Type != genai.TypeString {
		t.Fatalf("schema mismatch: %+v", s)
	}
}
