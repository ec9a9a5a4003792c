package main

import (
	"fmt"

	"github.com/robertof/go-device-factory/device"
	"github.com/robertof/go-device-factory/device/apple"
	"github.com/robertof/go-device-factory/showcase"
	"github.com/spf13/cobra"
)

type config struct {
  Debug, Trace bool
  ListSystems bool
  DumpMetrics bool
  Concurrency int
  DeviceSpecs []string
}

var deviceFactory = &apple.Factory{}

func bindFlags(cmd *cobra.Command, cfg *config) {
  flags := cmd.Flags()

  help := "Device spec in the form of `key=value,key=value`. Repeat to build several devices, " +
    "in order. Defaults to the built-in showcase sequence."

  var f device.SpecFactory = deviceFactory
  if docs, ok := f.(device.FactoryDocs); ok {
    help += "\n" + docs.Help()
  }

  flags.StringArrayVar(&cfg.DeviceSpecs, "device", nil, help)
  flags.IntVar(&cfg.Concurrency, "concurrency", showcase.DefaultConcurrency,
    "Max number of devices built at the same time")
  flags.BoolVar(&cfg.ListSystems, "list", false, "List supported operating systems and quit")
  flags.BoolVar(&cfg.DumpMetrics, "metrics", false, "Write factory metrics to stderr when done")
  flags.BoolVar(&cfg.Debug, "debug", false, "Enable debug logs")
  flags.BoolVar(&cfg.Trace, "trace", false, "Enable trace logs")
}

// systems resolves the requested operating systems, falling back to the default
// showcase sequence.
func (cfg config) systems() ([]device.OperatingSystem, error) {
  if len(cfg.DeviceSpecs) == 0 {
    return showcase.DefaultSystems(), nil
  }

  out := make([]device.OperatingSystem, 0, len(cfg.DeviceSpecs))

  for _, raw := range cfg.DeviceSpecs {
    system, err := device.NewDeviceSpec(raw).OperatingSystem()
    if err != nil {
      return nil, fmt.Errorf("invalid device spec %q: %w", raw, err)
    }

    out = append(out, system)
  }

  return out, nil
}
