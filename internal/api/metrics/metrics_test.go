package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestUserLifecycleTotal_Labels(t *testing.T) {
	c := UserLifecycleTotal.WithLabelValues("create", ResultDuplicate)
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestSessionsTotal_Labels(t *testing.T) {
	c := SessionsTotal.WithLabelValues("create", ResultOK)
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
