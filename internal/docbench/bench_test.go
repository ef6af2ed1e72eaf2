package docbench

import "testing"

func TestBenchRuns(t *testing.T) {
	count := 0
	result := Bench("test_counter", 100, func() {
		count++
	})
	if result.Iterations != 100 {
		t.Fatalf("got %d", result.Iterations)
	}
	if count < 100 {
		t.Fatalf("expected warmup + iterations, got count %d", count)
	}
}

func TestBenchSuite(t *testing.T) {
	suite := NewSuite()
	suite.Add("fast_op", 1000, func() {
		_ = 1 + 1
	})
	if len(suite.Results()) != 1 {
		t.Fatalf("expected 1 result, got %d", len(suite.Results()))
	}
}

func TestBenchThroughput(t *testing.T) {
	out := BenchThroughput("copy", 10, 1024, func() {})
	if out == "" {
		t.Fatalf("expected non-empty summary")
	}
}
