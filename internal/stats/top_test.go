package stats

import (
	"reflect"
	"testing"
)

func TestTop(t *testing.T) {
	counts := map[string]int{"b": 4, "a": 4, "c": 1, "space": 9}
	top := Top(counts, 3)
	want := []LabelCount{{"space", 9}, {"a", 4}, {"b", 4}}
	if !reflect.DeepEqual(top, want) {
		t.Fatalf("expected %v, got %v", want, top)
	}
	if all := Top(counts, 0); len(all) != 4 {
		t.Fatalf("expected all 4 labels, got %d", len(all))
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("flat series: %q", got)
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("two-point series: %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestShare(t *testing.T) {
	if Share(1, 4) != 25 {
		t.Fatalf("expected 25%%")
	}
	if Share(3, 0) != 0 {
		t.Fatalf("expected 0 for empty total")
	}
}
