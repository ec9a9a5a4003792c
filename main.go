package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robertof/go-device-factory/device"
	"github.com/robertof/go-device-factory/metrics"
	"github.com/robertof/go-device-factory/showcase"
	"github.com/robertof/go-device-factory/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
  zerolog.DurationFieldUnit = time.Second
  zerolog.TimeFieldFormat = time.RFC3339Nano

  log.Logger = log.Output(zerolog.ConsoleWriter{
    Out: os.Stderr,
    TimeFormat: "15:04:05.000",
  })

  if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
    ev := log.Fatal().Err(err)

    if kind, ok := utils.MatchError(err, device.ErrInvalidSpec, device.ErrUnknownSystemType); ok {
      ev = ev.AnErr("Kind", kind).Str("Hint", "see --help for the device spec format")
    }

    ev.Msg("Failed to run")
  }
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
  var cfg config

  cmd := &cobra.Command{
    Use: "device-factory",
    Short: "Build devices from operating system descriptions and describe them",
    Example: `  device-factory
  device-factory --device os=macOS,version=13
  device-factory --device os=iOS,version=16 --device os=iPadOS,version=12 --metrics`,
    Args: cobra.NoArgs,
    SilenceUsage: true,
    SilenceErrors: true,
    PersistentPreRun: func(cmd *cobra.Command, args []string) {
      setLogLevel(cfg)
    },
    RunE: func(cmd *cobra.Command, args []string) error {
      if cfg.ListSystems {
        doSystemDiscovery()
        return nil
      }

      return run(cmd.Context(), cfg, stdout, stderr)
    },
  }

  cmd.SetOut(stdout)
  cmd.SetErr(stderr)
  bindFlags(cmd, &cfg)

  return cmd
}

func setLogLevel(cfg config) {
  if cfg.Trace || os.Getenv("TRACE") != "" {
      zerolog.SetGlobalLevel(zerolog.TraceLevel)
  } else if cfg.Debug || os.Getenv("DEBUG") != "" {
      zerolog.SetGlobalLevel(zerolog.DebugLevel)
  } else {
      zerolog.SetGlobalLevel(zerolog.InfoLevel)
  }
}

func run(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
  systems, err := cfg.systems()
  if err != nil {
    return err
  }

  log.Debug().
    Array("Systems", utils.ToZeroLogArray(systems)).
    Int("Concurrency", cfg.Concurrency).
    Msg("Starting with the specified configuration")

  registry := prometheus.NewRegistry()
  recorder := metrics.NewRecorder()
  recorder.Register(registry)

  results, err := showcase.DescribeAllWithOptions(ctx, deviceFactory, systems, showcase.Options{
    Concurrency: cfg.Concurrency,
    Recorder: recorder,
  })
  if err != nil {
    return err
  }

  if err := showcase.Print(stdout, results); err != nil {
    return err
  }

  if cfg.DumpMetrics {
    return metrics.Dump(stderr, registry)
  }

  return nil
}
