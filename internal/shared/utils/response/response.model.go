package response

// TagApiResponse is the body of every /api/gpt reply
type TagApiResponse struct {
	Success bool    `json:"success"`         // true when tags were generated
	Tags    *string `json:"tags,omitempty"`  // comma-joined tags, set on every success
	Error   string  `json:"error,omitempty"` // human-readable message on failure
}
