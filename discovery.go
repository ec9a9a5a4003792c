package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robertof/go-device-factory/device"
	"github.com/robertof/go-device-factory/device/apple"
	"github.com/robertof/go-device-factory/utils"
)

func doSystemDiscovery() {
  types := device.SystemTypes()

  log.Info().
    Int("Found", len(types)).
    Array("Systems", utils.ToZeroLogArray(types)).
    Msg("Supported operating systems")

  for _, t := range types {
    log.Info().
      Stringer("System", t).
      Str("Variant", apple.VariantFor(t)).
      Msg("Found operating system")
  }
}
