package showcase

import (
	"context"
	"fmt"
	"io"

	"github.com/robertof/go-device-factory/device"
	"github.com/robertof/go-device-factory/showcase/model"
	"github.com/robertof/go-device-factory/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 1

type Options struct {
  // Maximum number of devices built at the same time. Values < 1 mean DefaultConcurrency.
  Concurrency int
  Recorder Recorder
}

// Recorder is notified of every device built by DescribeAll.
type Recorder interface {
  Observe(d device.Device)
}

// DefaultSystems is the sequence printed when nothing else is requested.
func DefaultSystems() []device.OperatingSystem {
  return []device.OperatingSystem{
    device.NewOperatingSystem(16, device.SystemTypeIOS),
    device.NewOperatingSystem(14, device.SystemTypeMacOS),
    device.NewOperatingSystem(12, device.SystemTypeIPadOS),
  }
}

func DescribeAll(
  ctx context.Context,
  factory device.Factory,
  systems []device.OperatingSystem,
) ([]model.Result, error) {
  return DescribeAllWithOptions(ctx, factory, systems, Options{})
}

// Build a device for every system and describe it. The returned results follow the
// order of systems regardless of concurrency.
func DescribeAllWithOptions(
  ctx context.Context,
  factory device.Factory,
  systems []device.OperatingSystem,
  options Options,
) ([]model.Result, error) {
  concurrency := options.Concurrency
  if concurrency < 1 {
    concurrency = DefaultConcurrency
  }

  log.Debug().
    Array("Systems", utils.ToZeroLogArray(systems)).
    Int("Concurrency", concurrency).
    Msg("Describing devices")

  out := make([]model.Result, len(systems))

  eg, egCtx := errgroup.WithContext(ctx)
  eg.SetLimit(concurrency)

  for i, system := range systems {
    i, system := i, system

    // stop scheduling once the context is done.
    if egCtx.Err() != nil {
      break
    }

    eg.Go(func() error {
      if err := egCtx.Err(); err != nil {
        return err
      }

      dev := factory.MakeDevice(system)
      out[i] = model.Result{
        System: system,
        Device: dev,
        Description: dev.Describe(),
      }

      log.Trace().
        Stringer("Device", dev).
        Stringer("Result", out[i]).
        Msg("Built device")

      if options.Recorder != nil {
        options.Recorder.Observe(dev)
      }

      return nil
    })
  }

  if err := eg.Wait(); err != nil {
    return nil, fmt.Errorf("failed to describe devices: %w", err)
  }

  // egCtx is always done after Wait; check the caller's context instead.
  if err := ctx.Err(); err != nil {
    return nil, fmt.Errorf("failed to describe devices: %w", err)
  }

  return out, nil
}

// Print writes one description per line, in order.
func Print(w io.Writer, results []model.Result) error {
  for _, r := range results {
    if _, err := fmt.Fprintln(w, r.Description); err != nil {
      return fmt.Errorf("failed to print %v: %w", r.System, err)
    }
  }

  return nil
}
