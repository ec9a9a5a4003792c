package model

import (
	"fmt"

	"github.com/robertof/go-device-factory/device"
)

type Result struct {
  System device.OperatingSystem
  Device device.Device
  Description string
}

func (r Result) String() string {
  return fmt.Sprintf("result(%v -> %q)", r.System, r.Description)
}
