package apple

import (
  "fmt"

  "github.com/robertof/go-device-factory/device"
)

const (
  NameMac = "Mac"
  NameIPhone = "iPhone"
  NameIPad = "iPad"
)

func describe(name string, system device.OperatingSystem) string {
  return fmt.Sprintf("%s: %v %d", name, system.Type, system.Version)
}

type Mac struct {
  system device.OperatingSystem
}

func NewMac(system device.OperatingSystem) Mac {
  return Mac{system: system}
}

func (d Mac) Name() string { return NameMac }
func (d Mac) System() device.OperatingSystem { return d.system }
func (d Mac) Describe() string { return describe(NameMac, d.system) }

func (d Mac) String() string {
  return fmt.Sprintf("apple[name=%q, os=%v]", NameMac, d.system)
}

type IPhone struct {
  system device.OperatingSystem
}

func NewIPhone(system device.OperatingSystem) IPhone {
  return IPhone{system: system}
}

func (d IPhone) Name() string { return NameIPhone }
func (d IPhone) System() device.OperatingSystem { return d.system }
func (d IPhone) Describe() string { return describe(NameIPhone, d.system) }

func (d IPhone) String() string {
  return fmt.Sprintf("apple[name=%q, os=%v]", NameIPhone, d.system)
}

type IPad struct {
  system device.OperatingSystem
}

func NewIPad(system device.OperatingSystem) IPad {
  return IPad{system: system}
}

func (d IPad) Name() string { return NameIPad }
func (d IPad) System() device.OperatingSystem { return d.system }
func (d IPad) Describe() string { return describe(NameIPad, d.system) }

func (d IPad) String() string {
  return fmt.Sprintf("apple[name=%q, os=%v]", NameIPad, d.system)
}
