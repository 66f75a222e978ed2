package metrics

import (
	"errors"
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/Aleph-Alpha/embedding-proxy/internal/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "test",
		EnableDefaultCollectors: false,
	})
}

func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			if matchesLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matchesLabels(metric *dto.Metric, labels map[string]string) bool {
	for k, v := range labels {
		found := false
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == k && pair.GetValue() == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestObserveBatchClosed(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "batch_closed",
		Resource:  observability.CloseReasonDeadline,
		Size:      3,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "batch_closed",
		Resource:  observability.CloseReasonSize,
		Size:      32,
	})

	if got := counterValue(t, m, "batches_closed_total", map[string]string{"reason": "deadline"}); got != 1 {
		t.Fatalf("deadline closes: got %v, want 1", got)
	}
	if got := counterValue(t, m, "batches_closed_total", map[string]string{"reason": "size"}); got != 1 {
		t.Fatalf("size closes: got %v, want 1", got)
	}
}

func gaugeValue(t *testing.T, m *Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			return metric.GetGauge().GetValue()
		}
	}
	return 0
}

func TestObserveInflightDispatches(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "dispatch_started",
		Size:      2,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "dispatch_started",
		Size:      3,
	})
	if got := gaugeValue(t, m, "inflight_dispatches"); got != 2 {
		t.Fatalf("after two starts: got %v, want 2", got)
	}

	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "dispatch",
		Size:      2,
	})
	if got := gaugeValue(t, m, "inflight_dispatches"); got != 1 {
		t.Fatalf("after one finish: got %v, want 1", got)
	}

	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "dispatch",
		Error:     errors.New("boom"),
		Metadata:  map[string]interface{}{"failure_kind": "transport"},
		Size:      3,
	})
	if got := gaugeValue(t, m, "inflight_dispatches"); got != 0 {
		t.Fatalf("after both finished: got %v, want 0", got)
	}
	// A failed dispatch still lowers the gauge and counts as a failure.
	if got := counterValue(t, m, "upstream_failures_total", map[string]string{"reason": "transport"}); got != 1 {
		t.Fatalf("upstream failures: got %v, want 1", got)
	}
}

func TestObserveDispatchFailure(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "dispatch",
		Error:     errors.New("boom"),
		Metadata:  map[string]interface{}{"failure_kind": "shape_mismatch"},
	})

	if got := counterValue(t, m, "upstream_failures_total", map[string]string{"reason": "shape_mismatch"}); got != 1 {
		t.Fatalf("upstream failures: got %v, want 1", got)
	}
}

func TestObserveDispatchSuccessNotCountedAsFailure(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "dispatch",
		Size:      4,
	})

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() == "upstream_failures_total" && len(fam.GetMetric()) > 0 {
			t.Fatal("successful dispatch must not count as an upstream failure")
		}
	}
}

func TestObserveUnknownOperationIgnored(t *testing.T) {
	m := newTestMetrics()

	// Must not panic or count anything.
	m.ObserveOperation(observability.OperationContext{
		Component: "batcher",
		Operation: "something_new",
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "unknown",
		Operation: "batch_closed",
	})

	if got := counterValue(t, m, "batches_closed_total", nil); got != 0 {
		t.Fatalf("unexpected batch_closed count: %v", got)
	}
}

func TestObserveJobSubmitted(t *testing.T) {
	m := newTestMetrics()

	for i := 0; i < 5; i++ {
		m.ObserveOperation(observability.OperationContext{
			Component: "batcher",
			Operation: "job_submitted",
			Size:      1,
		})
	}

	if got := counterValue(t, m, "jobs_submitted_total", nil); got != 5 {
		t.Fatalf("jobs submitted: got %v, want 5", got)
	}
}
