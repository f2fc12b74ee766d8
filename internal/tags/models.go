package tags

// TagRequest is a validated request for generated tags
type TagRequest struct {
	Title string
	Size  int
}

// Prompt renders the instruction sent to the completion provider
func (r TagRequest) Prompt() string {
	return BuildPrompt(r.Title, r.Size)
}
