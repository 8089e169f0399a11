// Chatterd is a rule-based conversational daemon.
//
// It classifies user messages into intents with weighted keyword
// patterns, extracts entities with a regex catalog, and keeps
// per-session conversation context so follow-up messages can fill in
// missing slots. The same engine backs an HTTP API and an interactive
// terminal chat.
//
// Usage:
//
//	# Start the HTTP server
//	chatterd serve
//
//	# Chat interactively in the terminal
//	chatterd chat
//
//	# Configure via file or environment
//	chatterd serve --config /etc/chatterd/config.yaml
//	SERVER_PORT=9090 chatterd serve
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/chatterd/internal/config"
	"github.com/fyrsmithlabs/chatterd/internal/dialog"
	chatterhttp "github.com/fyrsmithlabs/chatterd/internal/http"
	"github.com/fyrsmithlabs/chatterd/internal/logging"
	"github.com/fyrsmithlabs/chatterd/internal/tui"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var (
	configPath string
	plainChat  bool
	chatName   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chatterd",
	Short: "Rule-based conversational daemon",
	Long: `chatterd answers user messages with pattern-based intent classification,
regex entity extraction, and per-session conversation context.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/chatterd/config.yaml)")
	chatCmd.Flags().BoolVar(&plainChat, "plain", false, "use a plain line-based loop instead of the full-screen interface")
	chatCmd.Flags().StringVar(&chatName, "name", "", "your name, stored on the session")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

// serveCmd starts the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chatterd HTTP server",
	Long: `Start the HTTP server exposing the conversation API.

Examples:
  # Start with defaults
  chatterd serve

  # Override the port via environment
  SERVER_PORT=9090 chatterd serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		return runServe(ctx)
	},
}

// runServe starts the HTTP server and blocks until context cancellation.
func runServe(ctx context.Context) error {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting chatterd",
		zap.String("version", version),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout.Duration()))

	engine, err := dialog.NewEngine(logger, dialog.Config{
		HistorySize: cfg.Dialog.HistorySize,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize dialog engine: %w", err)
	}

	srv, err := chatterhttp.NewServer(engine, logger, &chatterhttp.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize http server: %w", err)
	}

	// Metrics endpoint
	srv.Echo().GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}

// chatCmd runs an interactive chat in the terminal.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively in the terminal",
	Long: `Start an interactive chat session backed by a local engine.

Examples:
  # Full-screen interface
  chatterd chat

  # Plain line-based loop, suitable for pipes
  chatterd chat --plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadWithFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// The chat is local; keep logs out of the terminal UI.
		logger := zap.NewNop()

		engine, err := dialog.NewEngine(logger, dialog.Config{
			HistorySize: cfg.Dialog.HistorySize,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize dialog engine: %w", err)
		}

		sessionID := uuid.New().String()
		if _, err := engine.GetOrCreateSession(sessionID); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		if chatName != "" {
			engine.SetUserName(sessionID, chatName)
		}

		if plainChat {
			return tui.RunPlain(engine, sessionID, cmd.InOrStdin(), cmd.OutOrStdout())
		}
		return tui.Run(engine, sessionID)
	},
}

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chatterd by Fyrsmith Labs\n")
		fmt.Printf("Version:    %s\n", version)
		fmt.Printf("Commit:     %s\n", gitCommit)
		fmt.Printf("Build Date: %s\n", buildDate)
	},
}
