// Package main implements the entry point for the streaming processor
// sidecar. The processor subscribes to a set of input streams, windows the
// merged record flow into invocation sessions against a user function, and
// publishes the function's results to the configured output streams.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/trisberg/streaming-processor/brokerclient"
	"github.com/trisberg/streaming-processor/config"
	"github.com/trisberg/streaming-processor/metric"
	"github.com/trisberg/streaming-processor/pkg/retry"
	"github.com/trisberg/streaming-processor/processor"
	"github.com/trisberg/streaming-processor/rpc/riff"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "streaming-processor"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Processor failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("Configuration loaded",
		"inputs", len(cfg.Inputs),
		"outputs", len(cfg.Outputs),
		"group", cfg.Group,
		"function", cfg.Function,
		"window", cfg.Window)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The function container may still be starting when the sidecar comes
	// up. Probe for TCP reachability before opening the invocation channel.
	if err := probeFunction(ctx, cfg.Function); err != nil {
		return fmt.Errorf("function endpoint unreachable: %w", err)
	}

	functionConn, err := grpc.NewClient(cfg.Function,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial function: %w", err)
	}
	defer func() { _ = functionConn.Close() }()

	pool, err := brokerclient.NewPool(cfg.Gateways())
	if err != nil {
		return fmt.Errorf("construct gateway pool: %w", err)
	}
	defer func() { _ = pool.Close() }()

	slog.Info("Gateway pool ready", "gateways", pool.Gateways())

	registry := metric.NewMetricsRegistry()
	if cfg.MetricsAddr != "" {
		go registry.Serve(ctx, cfg.MetricsAddr, slog.Default())
	}

	binding, err := processor.NewBinding(
		cfg.Inputs, cfg.InputNames,
		cfg.Outputs, cfg.OutputNames, cfg.OutputContentTypes)
	if err != nil {
		return fmt.Errorf("construct binding: %w", err)
	}

	p, err := processor.New(processor.Deps{
		Binding:  binding,
		Group:    cfg.Group,
		Window:   cfg.Window,
		Capacity: cfg.WindowBuffer,
		Pool:     pool,
		Function: riff.NewRiffClient(functionConn),
		Logger:   slog.Default(),
		Registry: registry,
	})
	if err != nil {
		return fmt.Errorf("construct pipeline: %w", err)
	}

	return p.Run(ctx)
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return true, nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting streaming processor",
		"version", Version,
		"build_time", BuildTime)
	return false, nil
}

// probeFunction blocks until the function endpoint accepts a TCP connection
// or the probe attempts are exhausted.
func probeFunction(ctx context.Context, address string) error {
	return retry.Do(ctx, retry.Connectivity(), func() error {
		conn, err := net.DialTimeout("tcp", address, 2*time.Second)
		if err != nil {
			return err
		}
		return conn.Close()
	})
}
