package constants

import "time"

// Tag generation limits and user-facing messages shared by the endpoint,
// the web page and the terminal composer.

// ================== LIMITS ==================

const (
	MIN_TAG_COUNT         = 0
	MAX_TAG_COUNT         = 10
	TITLE_CHARACTER_LIMIT = 80 // advisory only, shown as a counter
)

// ================== MESSAGES ==================

const (
	MSG_MISSING_PARAMS     = "Please provide the relevant query parameters."
	MSG_INVALID_SIZE       = "The size parameter must be a whole number between 0 and 10."
	MSG_PROVIDER_FAILED    = "The tag provider could not complete the request."
	MSG_METHOD_NOT_ALLOWED = "Method not allowed."
	MSG_NOT_FOUND          = "Not found."
	MSG_COPIED             = "Copied to clipboard!"
)

// ================== UI TIMINGS ==================

const (
	COPY_NOTICE_TTL = 3 * time.Second
)

// ================== PAGE COPY ==================

const (
	SEO_TITLE         = "Blog tags generator"
	SEO_DESCRIPTION   = "No more thinking of unique tags, now quickly generate tags for your blog posts."
	TITLE_PLACEHOLDER = "Why Google stores billions of lines of code in a single repository"
)
