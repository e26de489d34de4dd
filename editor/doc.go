// Package editor provides the Bubble Tea editing session backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior, ghost
// suggestion lifecycle (pause detection, throttled background fetch,
// keystroke matching, acceptance), the command-line and exit-confirmation
// state machines, and the status/help chrome.
package editor
