package apple

import (
  "testing"

  "github.com/robertof/go-device-factory/device"
)

func TestVariantsCoverEverySystemType(t *testing.T) {
  if len(variants) != device.SystemTypeCount {
    t.Fatalf("got %d variants, wanted %d", len(variants), device.SystemTypeCount)
  }

  for _, st := range device.SystemTypes() {
    v := variants[st]

    if v.build == nil || v.name == "" {
      t.Fatalf("system type %v has no variant: %+v", st, v)
    }

    if got := v.build(device.NewOperatingSystem(1, st)).Name(); got != v.name {
      t.Fatalf("variant for %v: built %q, table says %q", st, got, v.name)
    }
  }
}
