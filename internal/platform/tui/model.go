package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mishankov/gallows/internal/engine"
	"github.com/mishankov/gallows/internal/storage"
	"github.com/mishankov/gallows/internal/words"
)

// RoundOptions carries the per-round settings resolved from config,
// difficulty preset, and flags.
type RoundOptions struct {
	Category     engine.Category
	Lives        int
	GuessSeconds int // 0 disables the countdown
}

// RoundModel is the Bubble Tea model for playing one or more rounds of a
// single category. It owns the countdown; the engine only learns that
// time expired through Game.Timeout.
type RoundModel struct {
	source *words.Source
	store  *storage.Store
	opts   RoundOptions

	game      *engine.Game
	input     textinput.Model
	remaining int
	message   string
	msgStyle  int // one of msg* constants
	startedAt time.Time

	width      int
	height     int
	saved      bool
	abandoned  bool
	quitting   bool
	backToMenu bool
}

const (
	msgNeutral = iota
	msgGood
	msgBad
)

// NewRoundModel picks an answer from the source and starts a round.
func NewRoundModel(source *words.Source, store *storage.Store, opts RoundOptions, width, height int) (RoundModel, error) {
	answer, err := source.Pick(opts.Category)
	if err != nil {
		return RoundModel{}, err
	}

	game, err := engine.New(answer, opts.Category, opts.Lives)
	if err != nil {
		return RoundModel{}, err
	}

	input := textinput.New()
	input.Placeholder = "letter or full answer"
	input.CharLimit = 64
	input.Width = 30
	input.Focus()

	return RoundModel{
		source:    source,
		store:     store,
		opts:      opts,
		game:      game,
		input:     input,
		remaining: opts.GuessSeconds,
		startedAt: time.Now(),
		width:     width,
		height:    height,
	}, nil
}

// timed reports whether the per-guess countdown is enabled.
func (m RoundModel) timed() bool {
	return m.opts.GuessSeconds > 0
}

// roundOver reports whether the round stopped accepting guesses.
func (m RoundModel) roundOver() bool {
	return m.abandoned || m.game.State() != engine.StateInProgress
}

// Init starts the input cursor and, when timed, the countdown.
func (m RoundModel) Init() tea.Cmd {
	if m.timed() {
		return tea.Batch(textinput.Blink, tickCmd())
	}
	return textinput.Blink
}

// Update handles messages and drives the engine.
func (m RoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m RoundModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.roundOver() {
		switch msg.String() {
		case "r":
			return m.restart()
		case "b", "esc":
			m.backToMenu = true
			return m, tea.Quit
		case "q", "enter":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Abandon the round; the answer is shown, nothing is recorded.
		m.abandoned = true
		m.message = fmt.Sprintf("Round abandoned. The answer was %q.", m.game.Answer())
		m.msgStyle = msgNeutral
		return m, nil
	case "enter":
		m = m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTick advances the countdown by one second.
func (m RoundModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.timed() || m.roundOver() {
		return m, nil
	}

	m.remaining--
	if m.remaining > 0 {
		return m, tickCmd()
	}

	// Time expired: the platform reports it, the engine charges the life.
	if _, err := m.game.Timeout(); err == nil {
		m.message = fmt.Sprintf("Time is up! You lost one life. Lives left: %d", m.game.Lives())
		m.msgStyle = msgBad
	}
	m.remaining = m.opts.GuessSeconds
	m = m.finishIfOver()

	if m.roundOver() {
		return m, nil
	}
	return m, tickCmd()
}

// submit classifies the prompt content and applies it to the engine.
func (m RoundModel) submit() RoundModel {
	raw := m.input.Value()
	m.input.Reset()

	if strings.EqualFold(strings.TrimSpace(raw), "quit") {
		m.abandoned = true
		m.message = fmt.Sprintf("You quit the round. The answer was %q.", m.game.Answer())
		m.msgStyle = msgNeutral
		return m
	}

	intent := engine.Classify(raw)
	switch intent.Kind {
	case engine.IntentInvalid:
		// Re-prompt; no life, no turn consumed.
		m.message = "Enter a single letter or the full answer."
		m.msgStyle = msgNeutral
		return m

	case engine.IntentLetter:
		res, err := m.game.GuessLetter(intent.Letter)
		if err != nil {
			m.message = "That guess couldn't be applied."
			m.msgStyle = msgNeutral
			return m
		}
		switch res {
		case engine.ResultCorrect:
			m.message = fmt.Sprintf("Good! Letter %q is in the answer.", intent.Letter)
			m.msgStyle = msgGood
		case engine.ResultIncorrect:
			m.message = fmt.Sprintf("Sorry, %q is not in the answer. Lives left: %d", intent.Letter, m.game.Lives())
			m.msgStyle = msgBad
		case engine.ResultAlreadyGuessed:
			m.message = fmt.Sprintf("You already guessed %q. Try another letter.", intent.Letter)
			m.msgStyle = msgNeutral
		}

	case engine.IntentFull:
		res, err := m.game.GuessFull(intent.Full)
		if err != nil {
			m.message = "That guess couldn't be applied."
			m.msgStyle = msgNeutral
			return m
		}
		if res == engine.ResultCorrect {
			m.message = "You guessed the answer!"
			m.msgStyle = msgGood
		} else {
			m.message = fmt.Sprintf("Wrong full guess. Lives left: %d", m.game.Lives())
			m.msgStyle = msgBad
		}
	}

	// Every processed guess starts a fresh prompt with a fresh countdown.
	m.remaining = m.opts.GuessSeconds
	return m.finishIfOver()
}

// finishIfOver records the result once when the round reaches a terminal
// state. A nil store disables persistence without breaking play.
func (m RoundModel) finishIfOver() RoundModel {
	state := m.game.State()
	if state == engine.StateInProgress || m.saved || m.abandoned {
		return m
	}
	m.saved = true
	m.input.Blur()

	if m.store != nil {
		//nolint:errcheck // Best-effort save, the round result is already on screen
		m.store.SaveRound(storage.RoundEntry{
			Category:     m.opts.Category.String(),
			Answer:       m.game.Answer(),
			Won:          state == engine.StateWon,
			LivesLeft:    m.game.Lives(),
			Guesses:      m.game.GuessCount(),
			DurationSecs: int(time.Since(m.startedAt) / time.Second),
		})
	}
	return m
}

// restart begins a new round with a fresh answer from the source.
func (m RoundModel) restart() (tea.Model, tea.Cmd) {
	fresh, err := NewRoundModel(m.source, m.store, m.opts, m.width, m.height)
	if err != nil {
		m.message = fmt.Sprintf("Cannot start a new round: %v", err)
		m.msgStyle = msgBad
		return m, nil
	}
	return fresh, fresh.Init()
}

// View renders the round.
func (m RoundModel) View() string {
	if m.quitting && !m.roundOver() {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("G A L L O W S — %s", m.opts.Category.Title())
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	mistakes := m.game.MaxLives() - m.game.Lives()
	b.WriteString(gallowsStyle.Render(centerBlock(gallowsArt(mistakes, m.game.MaxLives()), m.width)))
	b.WriteString("\n\n")

	status := m.game.Status()
	b.WriteString(maskStyle.Render(centerText(spacedMask(status.Mask), m.width)))
	b.WriteString("\n\n")

	lives := strings.Repeat("♥ ", status.Lives) + strings.Repeat("♡ ", status.MaxLives-status.Lives)
	b.WriteString(centerText(strings.TrimSpace(lives), m.width))
	b.WriteString("\n")

	if len(status.Guessed) > 0 {
		letters := make([]string, len(status.Guessed))
		for i, r := range status.Guessed {
			letters[i] = string(r)
		}
		b.WriteString(faintStyle.Render(centerText("guessed: "+strings.Join(letters, " "), m.width)))
		b.WriteString("\n")
	}

	if m.timed() && !m.roundOver() {
		countdown := fmt.Sprintf("Time left: %ds", m.remaining)
		if m.remaining <= 5 {
			b.WriteString(warnStyle.Render(centerText(countdown, m.width)))
		} else {
			b.WriteString(faintStyle.Render(centerText(countdown, m.width)))
		}
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		line := centerText(m.message, m.width)
		switch m.msgStyle {
		case msgGood:
			b.WriteString(goodStyle.Render(line))
		case msgBad:
			b.WriteString(badStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.roundOver() {
		b.WriteString("\n")
		b.WriteString(m.renderOutcome())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render(centerText("Enter: guess  |  Esc: give up  |  Ctrl+C: quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// renderOutcome draws the end-of-round box with the answer and controls.
func (m RoundModel) renderOutcome() string {
	var headline string
	switch {
	case m.abandoned:
		headline = "ROUND ABANDONED"
	case m.game.State() == engine.StateWon:
		headline = "YOU WIN!"
	default:
		headline = "GAME OVER"
	}

	content := fmt.Sprintf("%s\n\nAnswer: %s\n\nR: new round  |  B: menu  |  Q: quit",
		headline, m.game.Answer())
	return centerBlock(overlayStyle.Render(content), m.width)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m RoundModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m RoundModel) BackToMenu() bool {
	return m.backToMenu
}

// RunRound runs a single-category round loop in the local terminal.
func RunRound(source *words.Source, store *storage.Store, opts RoundOptions, width, height int) error {
	model, err := NewRoundModel(source, store, opts, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
