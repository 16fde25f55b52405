// Package engine implements the word-guessing game state machine.
// It contains pure logic with no I/O, timing, or rendering dependencies;
// the platform feeds it guesses and timeout events and reads its status.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Category selects the kind of answer being played.
type Category int

const (
	// CategoryBasic is a single word made of letters only.
	CategoryBasic Category = iota
	// CategoryIntermediate is a phrase; spaces and punctuation are
	// revealed from the start, only letters have to be guessed.
	CategoryIntermediate
)

// String returns the category identifier used by the CLI and storage.
func (c Category) String() string {
	switch c {
	case CategoryBasic:
		return "basic"
	case CategoryIntermediate:
		return "intermediate"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name for display.
func (c Category) Title() string {
	switch c {
	case CategoryBasic:
		return "Basic (single word)"
	case CategoryIntermediate:
		return "Intermediate (phrase)"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a CLI argument to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "b":
		return CategoryBasic, nil
	case "intermediate", "i":
		return CategoryIntermediate, nil
	default:
		return 0, fmt.Errorf("engine: unknown category %q (want basic or intermediate)", s)
	}
}

// State represents the lifecycle of a round.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GuessResult describes the outcome of a single guess or timeout event.
// Wrong guesses and timeouts are normal outcomes, not errors.
type GuessResult int

const (
	ResultCorrect GuessResult = iota
	ResultIncorrect
	ResultAlreadyGuessed
	ResultTimeout
)

// String returns a human-readable name for the result.
func (r GuessResult) String() string {
	switch r {
	case ResultCorrect:
		return "correct"
	case ResultIncorrect:
		return "incorrect"
	case ResultAlreadyGuessed:
		return "already guessed"
	case ResultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

var (
	// ErrGameOver is returned by mutating calls after the round has been
	// won or lost. A correctly driven loop never triggers it.
	ErrGameOver = errors.New("engine: game already over")

	// ErrInvalidLetter is returned when a letter guess is not an
	// alphabetic character. The classifier filters these before they
	// reach the engine; the check here keeps the engine safe to drive
	// directly.
	ErrInvalidLetter = errors.New("engine: letter guess must be alphabetic")
)

// Game holds the state of one round. Create it with New, mutate it only
// through GuessLetter, GuessFull, and Timeout, and discard it at round end.
type Game struct {
	answer   string
	category Category
	maxLives int
	lives    int
	guessed  map[rune]bool
	solved   bool // set by a correct full-answer guess
}

// Status is a read-only snapshot consumed by the renderer after each event.
type Status struct {
	State    State
	Mask     string
	Lives    int
	MaxLives int
	Guessed  []rune // lowercase, sorted
}

// New creates a round for the given answer. The answer must be non-empty
// and, for the basic category, contain letters only; maxLives must be
// positive. Word selection and trimming happen upstream in the word source.
func New(answer string, category Category, maxLives int) (*Game, error) {
	if answer == "" {
		return nil, errors.New("engine: answer must be non-empty")
	}
	if maxLives <= 0 {
		return nil, fmt.Errorf("engine: max lives must be positive, got %d", maxLives)
	}
	if category == CategoryBasic {
		for _, r := range answer {
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("engine: basic answer %q must contain only letters", answer)
			}
		}
	}

	return &Game{
		answer:   answer,
		category: category,
		maxLives: maxLives,
		lives:    maxLives,
		guessed:  make(map[rune]bool),
	}, nil
}

// GuessLetter applies a single-letter guess. A letter that was already
// guessed is a no-op costing no life. A correct letter reveals every
// matching position at once; a wrong letter costs one life.
func (g *Game) GuessLetter(letter rune) (GuessResult, error) {
	if g.State() != StateInProgress {
		return 0, ErrGameOver
	}
	if !unicode.IsLetter(letter) {
		return 0, ErrInvalidLetter
	}

	letter = unicode.ToLower(letter)
	if g.guessed[letter] {
		return ResultAlreadyGuessed, nil
	}
	g.guessed[letter] = true

	if g.answerContains(letter) {
		return ResultCorrect, nil
	}
	g.loseLife()
	return ResultIncorrect, nil
}

// GuessFull applies a whole-answer guess. Comparison is case-insensitive
// after trimming surrounding whitespace; internal spacing and punctuation
// must match exactly. A wrong full guess costs one life.
func (g *Game) GuessFull(candidate string) (GuessResult, error) {
	if g.State() != StateInProgress {
		return 0, ErrGameOver
	}

	if strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(g.answer)) {
		g.solved = true
		return ResultCorrect, nil
	}
	g.loseLife()
	return ResultIncorrect, nil
}

// Timeout records that the per-guess time limit expired with no answer.
// It costs one life and records no letter. The engine owns no timing;
// the caller decides when a timeout happened.
func (g *Game) Timeout() (GuessResult, error) {
	if g.State() != StateInProgress {
		return 0, ErrGameOver
	}
	g.loseLife()
	return ResultTimeout, nil
}

// State derives the round state: won when every letter is revealed, lost
// when lives reach zero. Won and lost are terminal.
func (g *Game) State() State {
	if g.revealed() {
		return StateWon
	}
	if g.lives == 0 {
		return StateLost
	}
	return StateInProgress
}

// Status returns a snapshot of the round for rendering. Pure read.
func (g *Game) Status() Status {
	letters := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	return Status{
		State:    g.State(),
		Mask:     g.Mask(),
		Lives:    g.lives,
		MaxLives: g.maxLives,
		Guessed:  letters,
	}
}

// Mask returns the player-visible reconstruction of the answer: revealed
// characters in place, underscores elsewhere. Non-letter characters are
// always visible.
func (g *Game) Mask() string {
	var b strings.Builder
	for _, r := range g.answer {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
		case g.solved || g.guessed[unicode.ToLower(r)]:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Answer returns the hidden answer. The shell shows it at round end.
func (g *Game) Answer() string { return g.answer }

// Category returns the round's category.
func (g *Game) Category() Category { return g.category }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// MaxLives returns the configured life budget for this round.
func (g *Game) MaxLives() int { return g.maxLives }

// GuessCount returns how many distinct letters have been guessed.
func (g *Game) GuessCount() int { return len(g.guessed) }

func (g *Game) answerContains(letter rune) bool {
	for _, r := range g.answer {
		if unicode.ToLower(r) == letter {
			return true
		}
	}
	return false
}

// revealed reports whether every letter of the answer has been guessed
// (or the answer was solved by a full guess).
func (g *Game) revealed() bool {
	if g.solved {
		return true
	}
	for _, r := range g.answer {
		if unicode.IsLetter(r) && !g.guessed[unicode.ToLower(r)] {
			return false
		}
	}
	return true
}

func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
}
