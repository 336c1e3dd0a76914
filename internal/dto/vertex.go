package dto

type VertexGenerateRequest struct {
	Model    string
	System   string
	Contents []VertexContent
	Tools    []VertexTool
}

type VertexGenerateResponse struct {
	Text      string
	ToolCalls []VertexToolCall
}

// VertexContent is one conversation turn. Role is "user" or "model".
type VertexContent struct {
	Role  string
	Parts []VertexPart
}

// VertexPart holds exactly one of its fields.
type VertexPart struct {
	Text             *string
	FunctionCall     *VertexToolCall
	FunctionResponse *VertexToolResult
}

type VertexTool struct {
	Name        string
	Description string
	Parameters  *VertexSchema
}

type VertexToolCall struct {
	Name string
	Args map[string]any
}

type VertexToolResult struct {
	Name     string
	Response map[string]any
}

type VertexSchema struct {
	Type        string
	Description string
	Properties  map[string]*VertexSchema
	Required    []string
}
