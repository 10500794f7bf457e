package llm

import "testing"

// stubProvider satisfies Provider without serving any calls.
type stubProvider struct {
	Provider
	name string
}

func TestActiveProviderSwap(t *testing.T) {
	first := &stubProvider{name: "first"}
	second := &stubProvider{name: "second"}

	cell := NewActiveProvider(first)
	if got := cell.Get(); got != Provider(first) {
		t.Fatalf("expected first provider, got %v", got)
	}

	prev := cell.Swap(second)
	if prev != Provider(first) {
		t.Errorf("expected Swap to return the previous provider")
	}
	if got := cell.Get(); got != Provider(second) {
		t.Errorf("expected second provider after swap, got %v", got)
	}
}

func TestActiveProviderNil(t *testing.T) {
	cell := NewActiveProvider(nil)
	if cell.Get() != nil {
		t.Error("expected nil before startup configuration")
	}
}
