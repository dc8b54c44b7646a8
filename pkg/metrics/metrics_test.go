package metrics_test

import (
	"context"
	"myblog/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("widgets_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "widgets_total" {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0.0001)
		}
	}
	require.True(t, found, "counter was not exported")
}

func TestDefaultBucketsAscending(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Greater(t, metrics.DefaultBuckets[i], metrics.DefaultBuckets[i-1])
	}
}
