package device_test

import (
  "testing"

  "github.com/robertof/go-device-factory/device"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestSystemType_String(t *testing.T) {
  assert.Equal(t, "iOS", device.SystemTypeIOS.String())
  assert.Equal(t, "iPadOS", device.SystemTypeIPadOS.String())
  assert.Equal(t, "macOS", device.SystemTypeMacOS.String())
}

func TestSystemType_EveryTypeHasAName(t *testing.T) {
  seen := make(map[string]bool)

  for _, st := range device.SystemTypes() {
    require.True(t, st.Valid())

    name := st.String()
    require.NotEmpty(t, name)
    require.False(t, seen[name], "duplicate name %q", name)

    seen[name] = true
  }
}

func TestSystemType_StringPanicsOnUnknownValue(t *testing.T) {
  unknown := device.SystemType(device.SystemTypeCount)

  assert.False(t, unknown.Valid())
  assert.Panics(t, func() { _ = unknown.String() })
}

func TestSystemTypes(t *testing.T) {
  assert.Equal(t, []device.SystemType{
    device.SystemTypeIOS,
    device.SystemTypeIPadOS,
    device.SystemTypeMacOS,
  }, device.SystemTypes())
}

func TestParseSystemType(t *testing.T) {
  cases := map[string]struct {
    in string
    want device.SystemType
    wantErr bool
  }{
    "ios": {in: "iOS", want: device.SystemTypeIOS},
    "ipados lower case": {in: "ipados", want: device.SystemTypeIPadOS},
    "macos padded": {in: "  MACOS ", want: device.SystemTypeMacOS},
    "unknown": {in: "windows", wantErr: true},
    "empty": {in: "", wantErr: true},
  }

  for name, tc := range cases {
    t.Run(name, func(t *testing.T) {
      got, err := device.ParseSystemType(tc.in)

      if tc.wantErr {
        require.ErrorIs(t, err, device.ErrUnknownSystemType)
        return
      }

      require.NoError(t, err)
      assert.Equal(t, tc.want, got)
    })
  }
}

func TestParseSystemType_ErrorListsKnownNames(t *testing.T) {
  _, err := device.ParseSystemType("tvOS")

  require.ErrorIs(t, err, device.ErrUnknownSystemType)
  assert.Contains(t, err.Error(), "must be one of [iOS iPadOS macOS]")
}

func TestOperatingSystem(t *testing.T) {
  os := device.NewOperatingSystem(13, device.SystemTypeMacOS)

  assert.Equal(t, 13, os.Version)
  assert.Equal(t, device.SystemTypeMacOS, os.Type)
  assert.Equal(t, "macOS 13", os.String())
}

func TestOperatingSystem_NegativeVersionIsAccepted(t *testing.T) {
  os := device.NewOperatingSystem(-1, device.SystemTypeIOS)

  assert.Equal(t, "iOS -1", os.String())
}
