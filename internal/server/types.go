package server

// EmbedRequest is the incoming request payload on POST /embed.
type EmbedRequest struct {
	Inputs string `json:"inputs"`
}

// EmbedResponse is the successful response payload.
type EmbedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// ErrorResponse is the payload returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
