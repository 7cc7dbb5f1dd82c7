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

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/games/snake"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pixelsnake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate overrides the configured tick rate when positive.
	TickRate int

	// Seed fixes the RNG seed of every session. Zero seeds each
	// connection from the clock.
	Seed int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one independent snake session per SSH connection.
// High scores and history are shared through Services.
type SSHServer struct {
	config   SSHServerConfig
	services Services
	server   *ssh.Server
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, services Services) (*SSHServer, error) {
	logger := services.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pixelsnake-ssh",
		})
		services.Logger = logger
	}

	srv := &SSHServer{
		config:   cfg,
		services: services,
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".pixelsnake", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// runtimeConfig builds the settings of one connection's session.
func (s *SSHServer) runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	if s.services.Config.TickRate > 0 {
		cfg.TickRate = s.services.Config.TickRate
	}
	if s.config.TickRate > 0 {
		cfg.TickRate = s.config.TickRate
	}
	cfg.Seed = s.config.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// teaHandler creates a session and its Bubble Tea model for each connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		wish.Fatalln(sshSession, "pixelsnake needs an interactive terminal (try ssh -t)")
		return nil, nil
	}

	cfg := s.runtimeConfig(pty.Window.Width, pty.Window.Height)

	player := &playerLog{
		logger: s.logger.With("user", sshSession.User()),
	}
	session, cues, err := s.services.NewSession(cfg.Seed, player)
	if err != nil {
		s.logger.Error("cannot create session", "user", sshSession.User(), "error", err)
		wish.Fatalln(sshSession, "could not start a game")
		return nil, nil
	}
	player.session = session

	model := NewModel(session, cues, NewRenderer(bubbletea.MakeRenderer(sshSession)), cfg)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// playerLog reports finished games of one connection.
type playerLog struct {
	snake.NopListener
	logger  *log.Logger
	session *snake.Session
}

func (p *playerLog) OnGameOver(finalScore int, newHighScore bool) {
	kv := []any{"score", finalScore, "new_high", newHighScore}
	if p.session != nil {
		kv = append(kv, "mode", p.session.Mode(), "difficulty", p.session.Difficulty())
	}
	p.logger.Info("game finished", kv...)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until an interrupt.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("tui: SSH server failed: %w", err)
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
