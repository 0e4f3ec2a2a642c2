package viewcache

import (
	"testing"
	"time"
)

func TestSetGetInvalidate(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get(InvoiceListPath); ok {
		t.Fatal("expected empty cache")
	}

	c.Set(InvoiceListPath, []byte("rendered"))
	payload, ok := c.Get(InvoiceListPath)
	if !ok || string(payload) != "rendered" {
		t.Fatalf("expected cached payload, got %q ok=%v", payload, ok)
	}

	c.Invalidate(InvoiceListPath)
	if _, ok := c.Get(InvoiceListPath); ok {
		t.Fatal("expected invalidated entry")
	}
	if c.Invalidations() != 1 {
		t.Fatalf("expected 1 invalidation, got %d", c.Invalidations())
	}
}

func TestExpiry(t *testing.T) {
	c := New(time.Millisecond)
	c.Set("/home", []byte("x"))
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("/home"); ok {
		t.Fatal("expected expired entry")
	}
}
