package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/storage"
)

// SSHServerConfig configures `blobrun serve`.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath defaults to ~/.blobrun/host_key; wish generates the key
	// on first start.
	HostKeyPath string

	// DBPath is the run database shared by every session. When it cannot
	// be opened sessions still play, they just record nothing.
	DBPath string

	IdleTimeout time.Duration
	TickRate    int
}

// DefaultSSHServerConfig returns the settings `blobrun serve` starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer hands every SSH connection its own SessionModel.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server; call Serve to start listening.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	s := &SSHServer{
		cfg: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "blobrun-ssh",
		}),
	}

	keyPath, err := hostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		s.logger.Warn("run database unavailable, runs will not be recorded", "path", cfg.DBPath, "error", err)
		s.store = nil
	}

	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSession,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKey resolves the host key path and creates its directory.
func hostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".blobrun", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession is the bubbletea middleware handler. Connections without a
// PTY get nothing.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("connection without a PTY", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
	}
	logger := s.logger.With("user", sess.User())
	return NewSessionModel(s.store, cfg, sess.User(), logger), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("connected", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("disconnected", "user", sess.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second))
	}
}

// Serve listens until ctx is done or the listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: SSH server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits up to ten seconds for
// open sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
