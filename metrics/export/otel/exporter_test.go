package otel

import (
	"context"
	"errors"
	"testing"

	cognauth "github.com/mkweon/cognauth"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakeSource struct {
	snapshot cognauth.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() cognauth.MetricsSnapshot {
	return f.snapshot
}

func (f *fakeSource) AuditDropped() uint64 {
	return f.dropped
}

func newTestSource() *fakeSource {
	return &fakeSource{
		snapshot: cognauth.MetricsSnapshot{
			Counters: map[cognauth.MetricID]uint64{
				cognauth.MetricLoginSuccess: 7,
				cognauth.MetricOAuthBegin:   3,
			},
			Histograms: map[cognauth.MetricID][]uint64{
				cognauth.MetricExchangeLatency: {1, 0, 2, 0, 0, 0, 0, 1},
			},
		},
		dropped: 5,
	}
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	return rm
}

func findSumValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) == 0 {
				t.Fatalf("metric %s has unexpected shape %T", name, m.Data)
			}
			return sum.DataPoints[0].Value
		}
	}
	t.Fatalf("metric %s not collected", name)
	return 0
}

func findGaugeValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			gauge, ok := m.Data.(metricdata.Gauge[int64])
			if !ok || len(gauge.DataPoints) == 0 {
				t.Fatalf("metric %s has unexpected shape %T", name, m.Data)
			}
			return gauge.DataPoints[0].Value
		}
	}
	t.Fatalf("metric %s not collected", name)
	return 0
}

func TestExporterObservesCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	exporter, err := NewOTelExporterFromSource(provider.Meter("cognauth-test"), newTestSource())
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}
	t.Cleanup(func() {
		_ = exporter.Close()
	})

	rm := collect(t, reader)

	if got := findSumValue(t, rm, "cognauth_login_success_total"); got != 7 {
		t.Fatalf("login success = %d", got)
	}
	if got := findSumValue(t, rm, "cognauth_oauth_begin_total"); got != 3 {
		t.Fatalf("oauth begin = %d", got)
	}
	if got := findSumValue(t, rm, "cognauth_logout_total"); got != 0 {
		t.Fatalf("untouched counter = %d", got)
	}
	if got := findSumValue(t, rm, "cognauth_audit_dropped_total"); got != 5 {
		t.Fatalf("audit dropped = %d", got)
	}
}

func TestExporterObservesHistogramBuckets(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	exporter, err := NewOTelExporterFromSource(provider.Meter("cognauth-test"), newTestSource())
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}
	t.Cleanup(func() {
		_ = exporter.Close()
	})

	rm := collect(t, reader)

	// Raw buckets {1,0,2,0,0,0,0,1} exported cumulatively.
	if got := findGaugeValue(t, rm, "cognauth_exchange_latency_seconds_bucket_le_0_025"); got != 1 {
		t.Fatalf("le 0.025 = %d", got)
	}
	if got := findGaugeValue(t, rm, "cognauth_exchange_latency_seconds_bucket_le_0_1"); got != 3 {
		t.Fatalf("le 0.1 = %d", got)
	}
	if got := findGaugeValue(t, rm, "cognauth_exchange_latency_seconds_bucket_le_inf"); got != 4 {
		t.Fatalf("le inf = %d", got)
	}
	if got := findGaugeValue(t, rm, "cognauth_exchange_latency_seconds_count"); got != 4 {
		t.Fatalf("count = %d", got)
	}
}

func TestExporterTracksSourceUpdates(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	source := newTestSource()
	exporter, err := NewOTelExporterFromSource(provider.Meter("cognauth-test"), source)
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}
	t.Cleanup(func() {
		_ = exporter.Close()
	})

	collect(t, reader)

	source.snapshot.Counters[cognauth.MetricLoginSuccess] = 11

	rm := collect(t, reader)
	if got := findSumValue(t, rm, "cognauth_login_success_total"); got != 11 {
		t.Fatalf("updated counter = %d", got)
	}
}

func TestExporterInputValidation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	if _, err := NewOTelExporterFromSource(nil, newTestSource()); !errors.Is(err, ErrNilMeter) {
		t.Fatalf("nil meter: %v", err)
	}
	if _, err := NewOTelExporterFromSource(provider.Meter("cognauth-test"), nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("nil source: %v", err)
	}
}

func TestExporterCloseStopsObservation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	exporter, err := NewOTelExporterFromSource(provider.Meter("cognauth-test"), newTestSource())
	if err != nil {
		t.Fatalf("NewOTelExporterFromSource failed: %v", err)
	}

	if err := exporter.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect after close: %v", err)
	}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == "cognauth_login_success_total" {
				if sum, ok := m.Data.(metricdata.Sum[int64]); ok && len(sum.DataPoints) > 0 {
					t.Fatal("closed exporter still observing")
				}
			}
		}
	}

	// Close is safe to call again.
	if err := exporter.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
