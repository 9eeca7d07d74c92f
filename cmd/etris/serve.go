package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the etris SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a field picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.etris/host_key

Examples:
  etris serve                           # Listen on :23234 with auto-generated key
  etris serve --ssh :2222               # Listen on port 2222
  etris serve --host-key ./my_host_key  # Use specific host key
  etris serve --metrics :9090           # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: server.address from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = server.idle_timeout from config)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Address for the Prometheus /metrics endpoint")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc := tui.DefaultSSHServerConfig()
	sc.Address = cfg.Server.Address
	sc.HostKeyPath = cfg.Server.HostKey
	sc.DBPath = cfg.Storage.DBPath
	sc.IdleTimeout = cfg.Server.IdleTimeout
	sc.MetricsAddress = cfg.Server.MetricsAddress
	sc.TickRate = cfg.Display.FPS

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		sc.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		sc.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flags.Changed("metrics") {
		sc.MetricsAddress = flagMetricsAddr
	}

	server, err := tui.NewSSHServer(sc)
	if err != nil {
		return err
	}

	logger.Info("connect with ssh", "address", server.Addr(), "stop", "ctrl+c")
	return server.ListenAndServe()
}
