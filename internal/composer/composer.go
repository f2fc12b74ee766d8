package composer

import (
	"errors"
	"fmt"
	"strings"

	"blogtags/internal/shared/constants"
)

// State is the phase of a composer session.
type State int

const (
	Idle State = iota
	Submitting
	Populated
	ErrorShown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Populated:
		return "populated"
	case ErrorShown:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrCountOutOfRange = fmt.Errorf("tag count must be between %d and %d", constants.MIN_TAG_COUNT, constants.MAX_TAG_COUNT)
)

// Ticket identifies one submit. Only the latest ticket may resolve a session.
type Ticket uint64

// Submission is what a front end sends to the endpoint after Submit
type Submission struct {
	Ticket Ticket
	Title  string
	Size   int
}

// Composer holds one session of the tag composer: the form inputs, the
// generated tag list, the copy format and the transient messages.
// It is not safe for concurrent use; front ends drive it from one loop.
type Composer struct {
	state  State
	title  string
	count  int
	tags   []string
	format Format
	errMsg string

	notice   string
	noticeID uint64

	ticket Ticket
}

func New() *Composer {
	return &Composer{
		state:  Idle,
		tags:   []string{},
		format: DefaultFormat,
	}
}

func (c *Composer) State() State { return c.state }
func (c *Composer) Title() string { return c.title }
func (c *Composer) Count() int { return c.count }
func (c *Composer) Format() Format { return c.format }
func (c *Composer) Error() string { return c.errMsg }
func (c *Composer) Notice() string { return c.notice }
func (c *Composer) SetTitle(t string) { c.title = t }
func (c *Composer) SetCount(n int) { c.count = n }
func (c *Composer) SetFormat(f Format) { c.format = f }

// Tags returns a copy of the current tag list
func (c *Composer) Tags() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// OverTitleLimit reports whether the title is past the advisory limit
func (c *Composer) OverTitleLimit() bool {
	return len([]rune(c.title)) > constants.TITLE_CHARACTER_LIMIT
}

// Submit validates the form and moves the session to Submitting. On a
// validation error the state is unchanged and no request must be sent.
func (c *Composer) Submit() (Submission, error) {
	title := strings.TrimSpace(c.title)
	if title == "" {
		return Submission{}, ErrTitleRequired
	}
	if c.count < constants.MIN_TAG_COUNT || c.count > constants.MAX_TAG_COUNT {
		return Submission{}, ErrCountOutOfRange
	}

	c.ticket++
	c.state = Submitting
	c.errMsg = ""
	return Submission{Ticket: c.ticket, Title: title, Size: c.count}, nil
}

// Resolve applies a successful response. It returns false and changes
// nothing when the ticket is not the latest submit.
func (c *Composer) Resolve(ticket Ticket, joinedTags string) bool {
	if !c.accepts(ticket) {
		return false
	}
	c.tags = SplitTags(joinedTags)
	c.count = 0
	c.state = Populated
	return true
}

// Reject applies a failed response; the previous tag list is kept.
func (c *Composer) Reject(ticket Ticket, message string) bool {
	if !c.accepts(ticket) {
		return false
	}
	c.errMsg = message
	c.state = ErrorShown
	return true
}

func (c *Composer) accepts(ticket Ticket) bool {
	return c.state == Submitting && ticket == c.ticket
}

// Remove drops every chip equal to tag. Removing an absent tag is a no-op.
func (c *Composer) Remove(tag string) {
	c.tags = RemoveTag(c.tags, tag)
}

// Copy writes the formatted tag list to cb and sets the confirmation
// notice. With a blank title it returns ErrTitleRequired and copies nothing;
// front ends move focus to the title input. The returned id is passed to
// ClearNotice once COPY_NOTICE_TTL has elapsed.
func (c *Composer) Copy(cb Clipboard) (text string, noticeID uint64, err error) {
	if strings.TrimSpace(c.title) == "" {
		return "", 0, ErrTitleRequired
	}

	text = c.format.Join(c.tags)
	if err := cb.WriteAll(text); err != nil {
		return "", 0, fmt.Errorf("copy to clipboard: %w", err)
	}

	c.noticeID++
	c.notice = constants.MSG_COPIED
	return text, c.noticeID, nil
}

// ClearNotice clears the notice set by the copy identified by id. A later
// copy keeps its own notice.
func (c *Composer) ClearNotice(id uint64) {
	if id == c.noticeID {
		c.notice = ""
	}
}
