package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/eli32-vlc/text-autocomplete/buffer"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestShouldDispatch_WaitsForPause(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)

	if e.shouldDispatch(t0) {
		t.Fatalf("no input yet: should not dispatch")
	}

	e.noteInput(t0)
	if e.shouldDispatch(t0.Add(200 * time.Millisecond)) {
		t.Fatalf("pause not yet exceeded: should not dispatch")
	}
	if !e.shouldDispatch(t0.Add(201 * time.Millisecond)) {
		t.Fatalf("pause exceeded: should dispatch")
	}
}

func TestShouldDispatch_ThrottledAfterDispatch(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}

	e.noteInput(t0)
	now := t0.Add(300 * time.Millisecond)
	if !e.shouldDispatch(now) {
		t.Fatalf("expected dispatch")
	}
	e.beginFetch(now, anchor, "hello")
	e.resolve("", errors.New("boom"), anchor, "hello")

	// Pause still satisfied, but the throttle window has not elapsed.
	if e.shouldDispatch(now.Add(900 * time.Millisecond)) {
		t.Fatalf("throttle window: should not dispatch")
	}
	if !e.shouldDispatch(now.Add(time.Second)) {
		t.Fatalf("throttle elapsed: should dispatch")
	}
}

func TestShouldDispatch_SuppressedWhileInFlightOrDisplayed(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}

	e.noteInput(t0)
	now := t0.Add(10 * time.Second)
	e.beginFetch(now, anchor, "hello")
	if e.shouldDispatch(now.Add(10 * time.Second)) {
		t.Fatalf("in flight: should not dispatch")
	}

	e.resolve("world", nil, anchor, "hello")
	if _, ok := e.remaining(); !ok {
		t.Fatalf("expected suggestion installed")
	}
	if e.shouldDispatch(now.Add(20 * time.Second)) {
		t.Fatalf("suggestion displayed: should not dispatch")
	}
}

func TestShouldDispatch_DisabledEngineNeverDispatches(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	e.noteInput(t0)
	e.setEnabled(false)
	if e.shouldDispatch(t0.Add(time.Minute)) {
		t.Fatalf("disabled: should not dispatch")
	}
}

func TestResolve_StaleAnchorDropped(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")

	// The cursor moved while the fetch ran.
	e.resolve("world", nil, buffer.Pos{Row: 0, Col: 6}, "hello")
	if _, ok := e.remaining(); ok {
		t.Fatalf("stale anchor: suggestion should be dropped")
	}
	if e.inFlight {
		t.Fatalf("resolve should clear in-flight state")
	}
}

func TestResolve_StaleContextDropped(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")

	// Same position, but the text at that position changed.
	e.resolve("world", nil, anchor, "henlo")
	if _, ok := e.remaining(); ok {
		t.Fatalf("stale context: suggestion should be dropped")
	}
}

func TestResolve_FailureYieldsNoSuggestion(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")
	e.resolve("", errors.New("timeout"), anchor, "hello")
	if _, ok := e.remaining(); ok {
		t.Fatalf("failed fetch: suggestion should be dropped")
	}
}

func TestResolve_FlattensMultilineCompletions(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")
	e.resolve("one\ntwo", nil, anchor, "hello")
	got, ok := e.remaining()
	if !ok || got != "one two" {
		t.Fatalf("remaining: got %q, %v", got, ok)
	}
}

func TestMatchRune_AdvanceAndConsume(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")
	e.resolve("ab", nil, anchor, "hello")

	if !e.matchRune('a') {
		t.Fatalf("expected match on 'a'")
	}
	got, ok := e.remaining()
	if !ok || got != "b" {
		t.Fatalf("remaining after one match: got %q, %v", got, ok)
	}

	if !e.matchRune('b') {
		t.Fatalf("expected match on 'b'")
	}
	if _, ok := e.remaining(); ok {
		t.Fatalf("fully typed suggestion should be cleared")
	}
}

func TestMatchRune_MismatchClearsEntirely(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")
	e.resolve("world", nil, anchor, "hello")

	if e.matchRune('x') {
		t.Fatalf("expected mismatch on 'x'")
	}
	if _, ok := e.remaining(); ok {
		t.Fatalf("mismatch should clear the whole suggestion")
	}
}

func TestSetEnabled_OffClearsSuggestion(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 5}
	e.beginFetch(t0, anchor, "hello")
	e.resolve("world", nil, anchor, "hello")

	e.setEnabled(false)
	if _, ok := e.remaining(); ok {
		t.Fatalf("disable should clear the displayed suggestion")
	}
}

func TestDispatchCount_BoundedByThrottle(t *testing.T) {
	e := newSuggestEngine(200 * time.Millisecond)
	anchor := buffer.Pos{Row: 0, Col: 1}

	// Three simulated seconds of 20ms cycles; every fetch fails fast so
	// the engine is always ready again. The throttle alone must bound
	// the dispatch rate.
	dispatches := 0
	e.noteInput(t0)
	for step := 0; step < 150; step++ {
		now := t0.Add(time.Duration(step) * 20 * time.Millisecond)
		if e.shouldDispatch(now) {
			e.beginFetch(now, anchor, "x")
			e.resolve("", errors.New("unavailable"), anchor, "x")
			dispatches++
		}
	}
	if limit := 3/1 + 1; dispatches > limit {
		t.Fatalf("dispatches: got %d, want at most %d", dispatches, limit)
	}
	if dispatches == 0 {
		t.Fatalf("expected at least one dispatch")
	}
}
