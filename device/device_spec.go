package device

import (
  "strconv"
  "strings"

  "github.com/pkg/errors"
  "github.com/rs/zerolog/log"
)

type DeviceSpec map[string]string

const (
  DeviceSpecFieldSystem = "os"
  DeviceSpecFieldVersion = "version"
)

func NewDeviceSpec(s string) DeviceSpec {
  spec := DeviceSpec{}
  entries := strings.Split(s, ",")

  for _, entry := range entries {
    parts := strings.SplitN(entry, "=", 2)

    if len(parts) != 2 {
      log.Warn().Str("Entry", entry).Msg("Skipping invalid device spec entry")
      continue
    }

    spec[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
  }

  return spec
}

func (ds DeviceSpec) System() string {
  return ds[DeviceSpecFieldSystem]
}

func (ds DeviceSpec) Version() string {
  return ds[DeviceSpecFieldVersion]
}

// OperatingSystem parses the os and version fields. Both are required.
func (ds DeviceSpec) OperatingSystem() (os OperatingSystem, err error) {
  rawType, rawVersion := ds.System(), ds.Version()

  if rawType == "" {
    return os, errors.Wrapf(ErrInvalidSpec, "missing %q", DeviceSpecFieldSystem)
  }

  if rawVersion == "" {
    return os, errors.Wrapf(ErrInvalidSpec, "missing %q", DeviceSpecFieldVersion)
  }

  t, err := ParseSystemType(rawType)
  if err != nil {
    return os, err
  }

  version, err := strconv.Atoi(rawVersion)
  if err != nil {
    return os, errors.Wrapf(ErrInvalidSpec, "version %q is not an integer", rawVersion)
  }

  return NewOperatingSystem(version, t), nil
}
