package device

// Factory builds the Device variant matching an OperatingSystem. It cannot fail for a
// valid SystemType.
type Factory interface {
	MakeDevice(system OperatingSystem) Device
}

// SpecFactory builds devices from textual device specs.
type SpecFactory interface {
	FromSpec(spec DeviceSpec) (Device, error)
}

type FactoryDocs interface {
	Help() string
}
