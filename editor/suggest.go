package editor

import (
	"strings"
	"time"

	"github.com/eli32-vlc/text-autocomplete/buffer"
)

const (
	// throttleInterval bounds the dispatch rate regardless of typing
	// pattern; pause detection alone would fire after every short gap.
	throttleInterval = time.Second

	// fetchTimeout is the ceiling on one completion request.
	fetchTimeout = 3 * time.Second

	// Context sent with a fetch: previous rows plus the current line up
	// to the cursor, trimmed to the trailing runes.
	contextRows  = 10
	contextChars = 500
)

// Suggestion is ghost text anchored at the position it was generated for.
// Matched counts the leading runes already confirmed by identical
// keystrokes; the suggestion is valid only while the cursor sits at
// Anchor.Col+Matched on the anchor row, and every edit path that breaks
// that relation clears it.
type Suggestion struct {
	Text    []rune
	Anchor  buffer.Pos
	Matched int
}

// suggestEngine decides when to request a completion, tracks the single
// in-flight fetch, and keeps the displayed suggestion consistent with user
// input. Every method takes the current time from the caller, so tests
// drive the clock explicitly.
type suggestEngine struct {
	enabled    bool
	pauseDelay time.Duration

	lastInput    time.Time
	lastDispatch time.Time
	inFlight     bool

	// Snapshot of the in-flight request, compared against live state when
	// the result arrives; a mismatch means the result is stale.
	reqAnchor  buffer.Pos
	reqContext string

	sug *Suggestion
}

func newSuggestEngine(pauseDelay time.Duration) *suggestEngine {
	return &suggestEngine{enabled: true, pauseDelay: pauseDelay}
}

// noteInput records a buffer-changing keystroke for pause detection.
func (e *suggestEngine) noteInput(now time.Time) { e.lastInput = now }

// shouldDispatch reports whether a fetch should start now: assistance on,
// no ghost displayed, no fetch outstanding, at least one keystroke seen,
// the typing pause elapsed, and the dispatch throttle satisfied.
func (e *suggestEngine) shouldDispatch(now time.Time) bool {
	if !e.enabled || e.sug != nil || e.inFlight {
		return false
	}
	if e.lastInput.IsZero() {
		return false
	}
	if now.Sub(e.lastInput) <= e.pauseDelay {
		return false
	}
	if !e.lastDispatch.IsZero() && now.Sub(e.lastDispatch) < throttleInterval {
		return false
	}
	return true
}

func (e *suggestEngine) beginFetch(now time.Time, anchor buffer.Pos, context string) {
	e.inFlight = true
	e.lastDispatch = now
	e.reqAnchor = anchor
	e.reqContext = context
}

// resolve consumes a fetch result. The suggestion is installed only when
// the fetch succeeded with text and the editor still sits exactly where
// the request snapshot was taken; anything else is dropped silently.
func (e *suggestEngine) resolve(text string, err error, anchor buffer.Pos, context string) {
	if !e.inFlight {
		return
	}
	e.inFlight = false
	if err != nil || !e.enabled {
		return
	}
	if anchor != e.reqAnchor || context != e.reqContext {
		return // stale: the buffer moved on while the fetch ran
	}
	text = sanitizeSuggestion(text)
	if text == "" {
		return
	}
	e.sug = &Suggestion{Text: []rune(text), Anchor: anchor}
}

// matchRune advances the match cursor when the typed rune equals the next
// suggested rune and discards the suggestion entirely otherwise; there is
// no partial retention on mismatch.
func (e *suggestEngine) matchRune(r rune) bool {
	if e.sug == nil {
		return false
	}
	if e.sug.Matched < len(e.sug.Text) && e.sug.Text[e.sug.Matched] == r {
		e.sug.Matched++
		if e.sug.Matched == len(e.sug.Text) {
			e.sug = nil // fully typed out
		}
		return true
	}
	e.sug = nil
	return false
}

// remaining returns the unmatched ghost tail for rendering and acceptance.
func (e *suggestEngine) remaining() (string, bool) {
	if e.sug == nil {
		return "", false
	}
	return string(e.sug.Text[e.sug.Matched:]), true
}

func (e *suggestEngine) clear() { e.sug = nil }

func (e *suggestEngine) setEnabled(on bool) {
	e.enabled = on
	if !on {
		e.sug = nil
	}
}

// sanitizeSuggestion flattens a completion to a single displayable line.
func sanitizeSuggestion(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
