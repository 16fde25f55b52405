package engine

import (
	"strings"
	"unicode"
)

// IntentKind says how a raw guess string should be routed.
type IntentKind int

const (
	// IntentInvalid means empty input or a single non-letter character.
	// The caller re-prompts; no life and no turn is consumed.
	IntentInvalid IntentKind = iota
	// IntentLetter is a single-letter guess.
	IntentLetter
	// IntentFull is a whole-answer guess.
	IntentFull
)

// Intent is the classified form of a raw guess string.
type Intent struct {
	Kind   IntentKind
	Letter rune   // set when Kind is IntentLetter
	Full   string // set when Kind is IntentFull, whitespace-trimmed
}

// Classify routes a raw guess string: a single alphabetic character is a
// letter guess, anything longer is a full-answer guess, and everything
// else is invalid. All life-affecting judgment stays in Game; this only
// normalizes and routes.
func Classify(raw string) Intent {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Intent{Kind: IntentInvalid}
	}

	runes := []rune(trimmed)
	if len(runes) == 1 {
		if !unicode.IsLetter(runes[0]) {
			return Intent{Kind: IntentInvalid}
		}
		return Intent{Kind: IntentLetter, Letter: unicode.ToLower(runes[0])}
	}

	return Intent{Kind: IntentFull, Full: trimmed}
}
