// Program serviced launches and supervises jobs, and exposes the control
// services on a local socket and on the upstream dispatcher bus.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/erikdubbelboer/gspt"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/ixsystems/serviced/config"
	"github.com/ixsystems/serviced/dispatcher"
	"github.com/ixsystems/serviced/launcher"
	"github.com/ixsystems/serviced/logging"
	"github.com/ixsystems/serviced/procevent"
	"github.com/ixsystems/serviced/server"
	"github.com/ixsystems/serviced/supervisor"
)

var (
	socketAddress     string
	dispatcherAddress string
	configPath        string
	logPath           string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "serviced",
		Short: "serviced job supervisor",
		RunE:  runDaemon,
	}

	rootCmd.Flags().StringVarP(&socketAddress, "socket", "s", config.DefaultSocketAddress, "Socket address to listen on")
	rootCmd.Flags().StringVar(&dispatcherAddress, "dispatcher", config.DefaultDispatcherAddress, "Dispatcher bus socket address (\"none\" to disable)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.Flags().StringVar(&logPath, "log-file", config.DefaultLogPath, "Log file destination (empty for stderr)")

	// The launch shim: the child half of the job launch protocol. Runs as
	// a re-exec of this binary and replaces itself with the target
	// program.
	launchCmd := &cobra.Command{
		Use:    launcher.ChildCommand,
		Hidden: true,
		Args:   cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			err := launcher.Child()
			// Child only returns on failure.
			fmt.Fprintf(os.Stderr, "launch failed: %v\n", err)
			os.Exit(127)
		},
	}
	rootCmd.AddCommand(launchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("socket") {
		cfg.SocketAddress = socketAddress
	}
	if cmd.Flags().Changed("dispatcher") {
		cfg.DispatcherAddress = dispatcherAddress
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogPath = logPath
	}

	if err := logging.Init(cfg.LogPath); err != nil {
		return err
	}
	gspt.SetProcTitle("serviced")
	slog.Info("started")

	source, err := procevent.New()
	if err != nil {
		return fmt.Errorf("failed to open process event source: %w", err)
	}

	sup, err := supervisor.New(supervisor.Options{
		Source:       source,
		ProvideDelay: time.Duration(cfg.ProvideDelay) * time.Second,
	})
	if err != nil {
		return err
	}

	listen, err := server.Listen(cfg.SocketAddress)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	server.Register(grpcServer, sup)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sup.Run(ctx)
	}()

	if cfg.DispatcherAddress != "" && cfg.DispatcherAddress != "none" {
		busClient := dispatcher.New(cfg.DispatcherAddress, sup)
		wg.Add(1)
		go func() {
			defer wg.Done()
			busClient.Run(ctx)
		}()
	}

	// Handle shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info(
			"received signal, shutting down",
			"signal", sig,
		)
		sup.Shutdown()
		grpcServer.GracefulStop()
	}()

	slog.Info(
		"server listening",
		"addr", cfg.SocketAddress,
	)
	if err := grpcServer.Serve(listen); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	cancel()
	wg.Wait()
	sup.Close()

	slog.Info("server finished")
	return nil
}
