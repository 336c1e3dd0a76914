package helpers

import "encoding/json"

// Ptr returns a pointer to the provided value.
func Ptr[T any](val T) *T {
	return &val
}

// PayloadMap shapes a raw third-party body into the object form model
// function responses require. A JSON object is returned as decoded; any
// other JSON value is placed under "result", and a body that is not JSON at
// all is passed under "result" as text.
func PayloadMap(body []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil && obj != nil {
		return obj
	}
	var value any
	if err := json.Unmarshal(body, &value); err == nil {
		return map[string]any{"result": value}
	}
	return map[string]any{"result": string(body)}
}
