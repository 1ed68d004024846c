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

	"github.com/addisonking/zsweep/internal/config"
	"github.com/addisonking/zsweep/internal/core"
	"github.com/addisonking/zsweep/internal/prefs"
	"github.com/addisonking/zsweep/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2222").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.zsweep/host_key.
	HostKeyPath string

	// DBPath is the path to the session database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Settings supplies presets, replay limits and default prefs.
	Settings config.Config

	// Puzzles are offered in the menu after the presets.
	Puzzles []config.Puzzle
}

// SSHServer wraps a Wish SSH server for zsweep.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "zsweep-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := config.ExpandHome(cfg.HostKeyPath)
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".zsweep", "host_key")
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

	screen := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	userPrefs := s.config.Settings.Prefs
	if s.store != nil {
		loaded, err := prefs.Load(s.store, userPrefs)
		if err != nil {
			s.logger.Warn("could not load preferences", "error", err)
		} else {
			userPrefs = loaded
		}
	}

	model := NewAppModel(AppConfig{
		Items:     MenuItems(s.config.Settings, s.config.Puzzles),
		Store:     s.store,
		Prefs:     userPrefs,
		MaxFrames: s.config.Settings.Replay.MaxFrames,
		Width:     screen.ScreenW,
		Height:    screen.ScreenH,
		Logger:    s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
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

// AppConfig configures an AppModel.
type AppConfig struct {
	Items     []MenuItem
	Store     *storage.Store
	Prefs     prefs.Prefs
	MaxFrames int
	Width     int
	Height    int
	Logger    *log.Logger
}

// AppModel manages the full flow: menu -> session or stats -> menu.
// It is the top-level model for SSH sessions and the menu command.
type AppModel struct {
	cfg      AppConfig
	menu     MenuModel
	session  *SessionModel
	stats    *StatsModel
	quitting bool
}

// NewAppModel creates a new app model showing the menu.
func NewAppModel(cfg AppConfig) AppModel {
	return AppModel{
		cfg:  cfg,
		menu: NewMenuModel(cfg.Items, cfg.Width, cfg.Height),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	switch {
	case m.session != nil:
		return m.updateSession(msg)
	case m.stats != nil:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStats() {
		stats := NewStatsModel(m.cfg.Store, m.cfg.Width, m.cfg.Height)
		m.stats = &stats
		return m, stats.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		b, err := selected.NewBoard()
		if err != nil {
			if m.cfg.Logger != nil {
				m.cfg.Logger.Error("could not create board", "board", selected.ID, "error", err)
			}
			m.menu = NewMenuModel(m.cfg.Items, m.cfg.Width, m.cfg.Height)
			return m, nil
		}

		session := NewSessionModel(SessionConfig{
			BoardID:      selected.ID,
			Board:        b,
			Store:        m.cfg.Store,
			Prefs:        m.cfg.Prefs,
			MaxFrames:    m.cfg.MaxFrames,
			Width:        m.cfg.Width,
			Height:       m.cfg.Height,
			Logger:       m.cfg.Logger,
			ReturnToMenu: true,
		})
		m.session = &session
		return m, m.session.Init()
	}

	return m, cmd
}

// updateSession handles updates while a board is being played.
func (m AppModel) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.session.Update(msg)
	if session, ok := newModel.(SessionModel); ok {
		m.session = &session
	}

	if m.session.BackToMenu() {
		m.session = nil
		m.menu = NewMenuModel(m.cfg.Items, m.cfg.Width, m.cfg.Height)
		return m, m.menu.Init()
	}

	if m.session.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateStats handles updates on the stats screen.
func (m AppModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if stats, ok := newModel.(StatsModel); ok {
		m.stats = &stats
	}

	if m.stats.IsGoingBack() {
		m.stats = nil
		m.menu = NewMenuModel(m.cfg.Items, m.cfg.Width, m.cfg.Height)
		return m, m.menu.Init()
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.session != nil:
		return m.session.View()
	case m.stats != nil:
		return m.stats.View()
	}
	return m.menu.View()
}

// RunApp runs the menu-driven app in the local terminal.
func RunApp(cfg AppConfig) error {
	p := tea.NewProgram(
		NewAppModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
