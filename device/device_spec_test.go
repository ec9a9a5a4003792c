package device_test

import (
  "testing"

  "github.com/robertof/go-device-factory/device"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestNewDeviceSpec(t *testing.T) {
  spec := device.NewDeviceSpec(" os = iPadOS ,version=12,garbage,extra=a=b")

  assert.Equal(t, device.DeviceSpec{
    "os": "iPadOS",
    "version": "12",
    "extra": "a=b",
  }, spec)
  assert.Equal(t, "iPadOS", spec.System())
  assert.Equal(t, "12", spec.Version())
}

func TestDeviceSpec_OperatingSystem(t *testing.T) {
  cases := map[string]struct {
    spec string
    want device.OperatingSystem
    wantErr error
  }{
    "valid": {
      spec: "os=iOS,version=16",
      want: device.NewOperatingSystem(16, device.SystemTypeIOS),
    },
    "negative version": {
      spec: "os=macOS,version=-3",
      want: device.NewOperatingSystem(-3, device.SystemTypeMacOS),
    },
    "missing os": {
      spec: "version=16",
      wantErr: device.ErrInvalidSpec,
    },
    "missing version": {
      spec: "os=iOS",
      wantErr: device.ErrInvalidSpec,
    },
    "version not an integer": {
      spec: "os=iOS,version=sixteen",
      wantErr: device.ErrInvalidSpec,
    },
    "unknown os": {
      spec: "os=tvOS,version=17",
      wantErr: device.ErrUnknownSystemType,
    },
  }

  for name, tc := range cases {
    t.Run(name, func(t *testing.T) {
      got, err := device.NewDeviceSpec(tc.spec).OperatingSystem()

      if tc.wantErr != nil {
        require.ErrorIs(t, err, tc.wantErr)
        return
      }

      require.NoError(t, err)
      assert.Equal(t, tc.want, got)
    })
  }
}
