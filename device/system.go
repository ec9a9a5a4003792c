package device

import (
  "fmt"
  "strconv"
  "strings"

  "github.com/pkg/errors"
  "golang.org/x/exp/maps"
  "golang.org/x/exp/slices"
)

// SystemType is the platform an OperatingSystem belongs to.
type SystemType uint8

const (
  SystemTypeIOS SystemType = iota
  SystemTypeIPadOS
  SystemTypeMacOS

  // must stay last.
  systemTypeCount
)

// SystemTypeCount is the number of defined system types. Lookup tables indexed by
// SystemType assert their length against it at compile time.
const SystemTypeCount = int(systemTypeCount)

var systemTypeNames = [...]string{
  SystemTypeIOS:    "iOS",
  SystemTypeIPadOS: "iPadOS",
  SystemTypeMacOS:  "macOS",
}

// fails to compile when a SystemType has no name.
var _ [len(systemTypeNames) - SystemTypeCount]struct{}
var _ [SystemTypeCount - len(systemTypeNames)]struct{}

func _() {
  // an "invalid array index" compiler error means the SystemType values changed.
  // new types go right before systemTypeCount, and get a line here.
  var x [1]struct{}
  _ = x[SystemTypeIOS-0]
  _ = x[SystemTypeIPadOS-1]
  _ = x[SystemTypeMacOS-2]
  _ = x[systemTypeCount-3]
}

var systemTypesByName = func() map[string]SystemType {
  m := make(map[string]SystemType, len(systemTypeNames))

  for i, name := range systemTypeNames {
    m[strings.ToLower(name)] = SystemType(i)
  }

  return m
}()

func (t SystemType) String() string {
  if !t.Valid() {
    panic("unknown system type: " + strconv.Itoa(int(t)))
  }

  return systemTypeNames[t]
}

func (t SystemType) Valid() bool {
  return t < systemTypeCount
}

// SystemTypes returns every system type in declaration order.
func SystemTypes() []SystemType {
  out := make([]SystemType, SystemTypeCount)

  for i := range out {
    out[i] = SystemType(i)
  }

  return out
}

// ParseSystemType maps a raw value such as "iPadOS" (case-insensitive) to its SystemType.
func ParseSystemType(s string) (SystemType, error) {
  if t, ok := systemTypesByName[strings.ToLower(strings.TrimSpace(s))]; ok {
    return t, nil
  }

  known := maps.Values(systemTypesByName)
  slices.Sort(known)

  return 0, errors.Wrapf(ErrUnknownSystemType, "%q (must be one of %v)", s, known)
}

// OperatingSystem pairs a system type with its version. It is a plain value and is
// never mutated after construction.
type OperatingSystem struct {
  Version int
  Type    SystemType
}

func NewOperatingSystem(version int, t SystemType) OperatingSystem {
  return OperatingSystem{
    Version: version,
    Type:    t,
  }
}

func (os OperatingSystem) String() string {
  return fmt.Sprintf("%v %d", os.Type, os.Version)
}
