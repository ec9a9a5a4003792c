package device

import (
  "errors"
)

var (
  ErrUnknownSystemType = errors.New("unknown system type")
  ErrInvalidSpec = errors.New("invalid device spec")
)

type Device interface {
  Name() string
  System() OperatingSystem
  // Describe returns "<Name>: <type> <version>". It has no side effects.
  Describe() string
  String() string
}
