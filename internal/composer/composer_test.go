package composer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text   string
	writes int
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	f.writes++
	return nil
}

func submitted(t *testing.T, title string, count int) (*Composer, Submission) {
	t.Helper()
	c := New()
	c.SetTitle(title)
	c.SetCount(count)
	sub, err := c.Submit()
	require.NoError(t, err)
	return c, sub
}

func TestNewComposer(t *testing.T) {
	c := New()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, FormatHash, c.Format())
	assert.Empty(t, c.Tags())
	assert.Zero(t, c.Count())
}

func TestSubmitRequiresTitle(t *testing.T) {
	for _, title := range []string{"", "   "} {
		c := New()
		c.SetTitle(title)
		c.SetCount(3)

		_, err := c.Submit()
		assert.ErrorIs(t, err, ErrTitleRequired)
		assert.Equal(t, Idle, c.State(), "no request may be issued")
	}
}

func TestSubmitRequiresCountInRange(t *testing.T) {
	for _, n := range []int{-1, 11} {
		c := New()
		c.SetTitle("Monorepos")
		c.SetCount(n)

		_, err := c.Submit()
		assert.ErrorIs(t, err, ErrCountOutOfRange)
		assert.Equal(t, Idle, c.State())
	}
}

func TestSubmitTrimsTitle(t *testing.T) {
	c, sub := submitted(t, "  Monorepos  ", 3)
	assert.Equal(t, Submitting, c.State())
	assert.Equal(t, "Monorepos", sub.Title)
	assert.Equal(t, 3, sub.Size)
}

func TestSubmittingToPopulated(t *testing.T) {
	c, sub := submitted(t, "Why Google stores billions of lines of code in a single repository", 3)

	require.True(t, c.Resolve(sub.Ticket, "Monorepo,Google,VersionControl"))

	assert.Equal(t, Populated, c.State())
	assert.Equal(t, []string{"Monorepo", "Google", "VersionControl"}, c.Tags())
	assert.Zero(t, c.Count(), "count resets after a successful submit")
	assert.Empty(t, c.Error())
}

func TestSubmittingToErrorShownKeepsTags(t *testing.T) {
	c, sub := submitted(t, "Monorepos", 2)
	require.True(t, c.Resolve(sub.Ticket, "a,b"))

	c.SetCount(2)
	sub, err := c.Submit()
	require.NoError(t, err)
	require.True(t, c.Reject(sub.Ticket, "Please provide the relevant query parameters."))

	assert.Equal(t, ErrorShown, c.State())
	assert.Equal(t, "Please provide the relevant query parameters.", c.Error())
	assert.Equal(t, []string{"a", "b"}, c.Tags())
	assert.Equal(t, 2, c.Count())
}

func TestResubmitOverwritesTagsAndClearsError(t *testing.T) {
	c, sub := submitted(t, "Monorepos", 2)
	require.True(t, c.Reject(sub.Ticket, "boom"))

	sub, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Submitting, c.State())
	assert.Empty(t, c.Error())

	require.True(t, c.Resolve(sub.Ticket, "x,y,z"))
	assert.Equal(t, []string{"x", "y", "z"}, c.Tags())

	c.SetCount(1)
	sub, err = c.Submit()
	require.NoError(t, err)
	require.True(t, c.Resolve(sub.Ticket, "only"))
	assert.Equal(t, []string{"only"}, c.Tags())
}

func TestStaleResponsesIgnored(t *testing.T) {
	c, first := submitted(t, "Monorepos", 2)
	second, err := c.Submit()
	require.NoError(t, err)

	assert.False(t, c.Resolve(first.Ticket, "old,tags"))
	assert.False(t, c.Reject(first.Ticket, "old error"))
	assert.Equal(t, Submitting, c.State())

	require.True(t, c.Resolve(second.Ticket, "new,tags"))
	assert.Equal(t, []string{"new", "tags"}, c.Tags())

	assert.False(t, c.Resolve(second.Ticket, "again"), "a ticket resolves once")
}

func TestResolveOutsideSubmittingIgnored(t *testing.T) {
	c := New()
	assert.False(t, c.Resolve(0, "a"))
	assert.False(t, c.Reject(0, "x"))
	assert.Equal(t, Idle, c.State())
}

func TestRemoveChip(t *testing.T) {
	c, sub := submitted(t, "Monorepos", 3)
	require.True(t, c.Resolve(sub.Ticket, "alpha,beta,gamma"))

	c.Remove("beta")
	assert.Equal(t, []string{"alpha", "gamma"}, c.Tags())
	assert.Equal(t, Populated, c.State())

	c.Remove("beta")
	assert.Equal(t, []string{"alpha", "gamma"}, c.Tags())
}

func TestTagsReturnsCopy(t *testing.T) {
	c, sub := submitted(t, "Monorepos", 2)
	require.True(t, c.Resolve(sub.Ticket, "a,b"))

	tags := c.Tags()
	tags[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, c.Tags())
}

func TestCopyFormats(t *testing.T) {
	c, sub := submitted(t, "Monorepos", 2)
	require.True(t, c.Resolve(sub.Ticket, "alpha,beta"))

	want := map[Format]string{
		FormatHash:  "#alpha #beta ",
		FormatComma: "alpha,beta",
		FormatDash:  "alpha - beta",
		FormatNone:  "alpha beta",
	}
	for format, expected := range want {
		cb := &fakeClipboard{}
		c.SetFormat(format)

		text, _, err := c.Copy(cb)
		require.NoError(t, err)
		assert.Equal(t, expected, text)
		assert.Equal(t, expected, cb.text)
		assert.Equal(t, "Copied to clipboard!", c.Notice())
	}
}

func TestCopyWithBlankTitleCopiesNothing(t *testing.T) {
	c, sub := submitted(t, "Monorepos", 2)
	require.True(t, c.Resolve(sub.Ticket, "alpha,beta"))
	c.SetTitle("")

	cb := &fakeClipboard{}
	_, _, err := c.Copy(cb)

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Zero(t, cb.writes)
	assert.Empty(t, c.Notice())
}

func TestCopyClipboardFailure(t *testing.T) {
	c := New()
	c.SetTitle("Monorepos")

	_, _, err := c.Copy(&fakeClipboard{err: errors.New("no xclip")})
	assert.Error(t, err)
	assert.Empty(t, c.Notice())
}

func TestClearNoticeOnlyForLatestCopy(t *testing.T) {
	c := New()
	c.SetTitle("Monorepos")
	cb := &fakeClipboard{}

	_, first, err := c.Copy(cb)
	require.NoError(t, err)
	_, second, err := c.Copy(cb)
	require.NoError(t, err)

	c.ClearNotice(first)
	assert.Equal(t, "Copied to clipboard!", c.Notice())

	c.ClearNotice(second)
	assert.Empty(t, c.Notice())
}

func TestOverTitleLimit(t *testing.T) {
	c := New()
	c.SetTitle("short")
	assert.False(t, c.OverTitleLimit())

	long := make([]rune, 81)
	for i := range long {
		long[i] = 'é'
	}
	c.SetTitle(string(long))
	assert.True(t, c.OverTitleLimit())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "populated", Populated.String())
	assert.Equal(t, "error", ErrorShown.String())
	assert.Equal(t, "State(9)", State(9).String())
}
