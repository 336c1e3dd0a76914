package dto

import "context"

// Tool is a capability offered to the reasoning engine: given a place name
// it returns the raw third-party body.
type Tool interface {
	Name() string
	Description() string
	Fetch(ctx context.Context, place string) ([]byte, error)
}

// AgentRequest is a single engine invocation: a fixed instruction, the
// tools the model may call and the user's query as the only turn.
type AgentRequest struct {
	Instruction string
	Query       string
	Tools       []Tool
}
