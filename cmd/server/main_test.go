package main

import "testing"

func TestConnectionLimiter(t *testing.T) {
	l := newConnectionLimiter(2)

	if _, ok := l.acquire("10.0.0.1"); !ok {
		t.Fatal("Expected first connection to be accepted")
	}
	if count, ok := l.acquire("10.0.0.1"); !ok || count != 2 {
		t.Fatalf("Expected second connection to be accepted with count 2, got %d", count)
	}
	if count, ok := l.acquire("10.0.0.1"); ok || count != 3 {
		t.Fatalf("Expected third connection to be denied, got ok=%v count=%d", ok, count)
	}
	if _, ok := l.acquire("10.0.0.2"); !ok {
		t.Fatal("Expected other IPs to be unaffected")
	}

	if after := l.release("10.0.0.1"); after != 1 {
		t.Errorf("Expected 1 connection after release, got %d", after)
	}
	l.release("10.0.0.1")
	if _, present := l.count["10.0.0.1"]; present {
		t.Error("Expected empty counters to be removed")
	}
}
