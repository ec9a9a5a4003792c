package metrics

import (
  "fmt"
  "io"

  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/common/expfmt"
  "github.com/robertof/go-device-factory/device"
)

// Recorder counts the devices built by the factory. Safe for concurrent use.
type Recorder struct {
  created *prometheus.CounterVec
  lastVersion *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
  return &Recorder{
    created: prometheus.NewCounterVec(prometheus.CounterOpts{
      Name: "device_factory_devices_created_total",
      Help: "Devices built by the factory, by variant and operating system.",
    }, []string{"variant", "os"}),
    lastVersion: prometheus.NewGaugeVec(prometheus.GaugeOpts{
      Name: "device_factory_last_version",
      Help: "Operating system version of the last device built, by operating system.",
    }, []string{"os"}),
  }
}

func (r *Recorder) Register(reg prometheus.Registerer) {
  reg.MustRegister(r.created, r.lastVersion)
}

func (r *Recorder) Observe(d device.Device) {
  system := d.System()

  r.created.WithLabelValues(d.Name(), system.Type.String()).Inc()
  r.lastVersion.WithLabelValues(system.Type.String()).Set(float64(system.Version))
}

// Dump writes every gathered metric family in the Prometheus text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
  families, err := g.Gather()
  if err != nil {
    return fmt.Errorf("failed to gather metrics: %w", err)
  }

  enc := expfmt.NewEncoder(w, expfmt.FmtText)

  for _, mf := range families {
    if err := enc.Encode(mf); err != nil {
      return fmt.Errorf("failed to encode metric family %q: %w", mf.GetName(), err)
    }
  }

  return nil
}
