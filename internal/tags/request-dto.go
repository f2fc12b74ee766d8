package tags

// GenerateTagsQuery is the raw query string of GET /api/gpt. Size stays a
// string so that malformed numbers are rejected by ParseSize instead of the
// form binder.
type GenerateTagsQuery struct {
	Title string `form:"title" binding:"required"`
	Size  string `form:"size" binding:"required"`
}
