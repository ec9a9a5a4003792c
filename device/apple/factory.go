package apple

import (
  "fmt"
  "strings"

  "github.com/robertof/go-device-factory/device"
  "github.com/rs/zerolog/log"
)

type variant struct {
  name string
  build func(device.OperatingSystem) device.Device
}

// one entry per device.SystemType, indexed by it.
var variants = [...]variant{
  device.SystemTypeIOS: {
    name: NameIPhone,
    build: func(s device.OperatingSystem) device.Device { return NewIPhone(s) },
  },
  device.SystemTypeIPadOS: {
    name: NameIPad,
    build: func(s device.OperatingSystem) device.Device { return NewIPad(s) },
  },
  device.SystemTypeMacOS: {
    name: NameMac,
    build: func(s device.OperatingSystem) device.Device { return NewMac(s) },
  },
}

// adding a device.SystemType without a variant breaks the build here.
var _ [len(variants) - device.SystemTypeCount]struct{}
var _ [device.SystemTypeCount - len(variants)]struct{}

type Factory struct{}

var (
  _ device.Factory = &Factory{}
  _ device.SpecFactory = &Factory{}
  _ device.FactoryDocs = &Factory{}
)

// MakeDevice returns the variant matching system.Type: iOS -> iPhone, iPadOS -> iPad,
// macOS -> Mac.
func (f *Factory) MakeDevice(system device.OperatingSystem) device.Device {
  if !system.Type.Valid() {
    panic(fmt.Sprintf("apple: no variant for system type %d", system.Type))
  }

  return variants[system.Type].build(system)
}

func (f *Factory) FromSpec(spec device.DeviceSpec) (device.Device, error) {
  system, err := spec.OperatingSystem()
  if err != nil {
    return nil, fmt.Errorf("apple: %w", err)
  }

  d := f.MakeDevice(system)

  log.Debug().Stringer("Device", d).Msg("apple: created device from spec")

  return d, nil
}

func (f *Factory) Help() string {
  names := make([]string, 0, device.SystemTypeCount)

  for _, t := range device.SystemTypes() {
    names = append(names, t.String())
  }

  return `Supported parameters:
os (string, required): Operating system, one of ` + strings.Join(names, ", ") + `
version (int, required): Operating system version`
}

// VariantFor returns the name of the variant built for t.
func VariantFor(t device.SystemType) string {
  if !t.Valid() {
    panic(fmt.Sprintf("apple: no variant for system type %d", t))
  }

  return variants[t].name
}
