package dto

type AskRequest struct {
	UserQuery string `json:"user_query"`
}

// AskResponse is shared by the liveness and ask endpoints.
type AskResponse struct {
	Response string `json:"response"`
}
