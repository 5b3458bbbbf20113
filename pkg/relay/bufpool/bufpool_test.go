package bufpool

import "testing"

func TestGetReturnsZeroLengthBuffer(t *testing.T) {
	buf := Get()
	defer Put(buf)
	if len(buf.B) != 0 {
		t.Fatalf("expected zero-length buffer from pool, got len %d", len(buf.B))
	}
}

func TestMetricsCountGetsAndPuts(t *testing.T) {
	before := GetMetrics()
	buf := Get()
	Put(buf)
	after := GetMetrics()
	if after.Gets != before.Gets+1 {
		t.Fatalf("Gets = %d, want %d", after.Gets, before.Gets+1)
	}
	if after.Puts != before.Puts+1 {
		t.Fatalf("Puts = %d, want %d", after.Puts, before.Puts+1)
	}
}
