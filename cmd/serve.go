package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/gedref/internal/api"
	"github.com/joescharf/gedref/internal/daemon"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing tag labels, pick-lists, locales and tree charts.\nBy default it listens on port 8080. Use --port to change it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveRun(viper.GetInt("port"))
	},
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API server is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveStatusRun()
	},
}

var serveStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveStopRun()
	},
}

func init() {
	serveCmd.AddCommand(serveStatusCmd)
	serveCmd.AddCommand(serveStopCmd)
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

// serverState returns the file a running server records itself in.
func serverState() *daemon.StateFile {
	return daemon.NewStateFile(filepath.Join(viper.GetString("state_dir"), "serve.pid"))
}

func serveRun(port int) error {
	state := serverState()
	if st, running := state.Running(); running {
		return fmt.Errorf("server already running (pid %d, port %d)", st.PID, st.Port)
	}

	s, err := getStore()
	if err != nil {
		return err
	}
	b, err := getBundle()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           api.NewServer(s, b, chartTheme()).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := os.MkdirAll(filepath.Dir(state.Path), 0o755); err != nil {
		_ = ln.Close()
		return fmt.Errorf("create state directory: %w", err)
	}
	if err := state.Save(port); err != nil {
		_ = ln.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	defer func() { _ = state.Remove() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()
	ui.Info("Serving API at http://localhost%s/api/v1", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func serveStatusRun() error {
	st, running := serverState().Running()
	if !running {
		ui.Info("No API server running")
		return nil
	}
	ui.Success("API server running (pid %d) at http://localhost:%d/api/v1", st.PID, st.Port)
	return nil
}

func serveStopRun() error {
	state := serverState()
	st, running := state.Running()
	if !running {
		// Clear a file left behind by a crashed server.
		_ = state.Remove()
		ui.Info("No API server running")
		return nil
	}

	if dryRun {
		ui.DryRunMsg("Would stop API server (pid %d)", st.PID)
		return nil
	}

	if err := state.Stop(); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	ui.Success("Stopped API server (pid %d)", st.PID)
	return nil
}
