package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/mishankov/gallows/internal/storage"
	"github.com/mishankov/gallows/internal/words"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.gallows/host_key.
	HostKeyPath string

	// DBPath is the path to the rounds database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Lives and GuessSeconds apply to every round played over SSH.
	Lives        int
	GuessSeconds int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:      ":23234",
		DBPath:       "~/.gallows/rounds.db",
		IdleTimeout:  30 * time.Minute,
		Lives:        6,
		GuessSeconds: 15,
	}
}

// SSHServer wraps a Wish SSH server for the game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	source *words.Source
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, source *words.Source) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gallows-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		source: source,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".gallows", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(s.source, s.store, SessionOptions{
		Lives:        s.config.Lives,
		GuessSeconds: s.config.GuessSeconds,
		Width:        pty.Window.Width,
		Height:       pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionOptions holds per-session settings for SSH play.
type SessionOptions struct {
	Lives        int
	GuessSeconds int
	Width        int
	Height       int
}

// sessionScreen identifies which sub-model is active in a session.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenRound
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> round -> menu, with
// the past-rounds screen reachable from the menu. This is the top-level
// model used for SSH sessions.
type SessionModel struct {
	source *words.Source
	store  *storage.Store
	opts   SessionOptions

	screen     sessionScreen
	menu       MenuModel
	round      *RoundModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(source *words.Source, store *storage.Store, opts SessionOptions) SessionModel {
	return SessionModel{
		source: source,
		store:  store,
		opts:   opts,
		screen: screenMenu,
		menu:   NewMenuModel(source, store, opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenRound:
		return m.updateRound(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when the menu is active.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.opts.Width, m.opts.Height)
		m.scoreboard = &sb
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		round, err := NewRoundModel(m.source, m.store, RoundOptions{
			Category:     selected.Category,
			Lives:        m.opts.Lives,
			GuessSeconds: m.opts.GuessSeconds,
		}, m.opts.Width, m.opts.Height)
		if err != nil {
			m.menu = NewMenuModel(m.source, m.store, m.opts.Width, m.opts.Height)
			return m, m.menu.Init()
		}

		m.round = &round
		m.screen = screenRound
		return m, round.Init()
	}

	return m, cmd
}

// updateRound handles updates while a round is being played.
func (m SessionModel) updateRound(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The round model quits on "back to menu"; intercept that here and
	// swap screens inside the session instead.
	newModel, cmd := m.round.Update(msg)
	if roundModel, ok := newModel.(RoundModel); ok {
		m.round = &roundModel
	}

	if m.round.BackToMenu() {
		m.round = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.source, m.store, m.opts.Width, m.opts.Height)
		return m, m.menu.Init()
	}

	if m.round.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates for the past-rounds screen.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sbModel, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sbModel
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.source, m.store, m.opts.Width, m.opts.Height)
		return m, m.menu.Init()
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenRound:
		if m.round != nil {
			return m.round.View()
		}
	case screenScoreboard:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}

	return m.menu.View()
}
