package model

import (
	"reflect"
	"testing"
)

func TestButtonOrder(t *testing.T) {
	counts := map[string]int{"x2": 0, "middle": 1, "wheel": 0, "left": 4, "x1": 0, "right": 2, "back": 1}
	want := []string{"left", "right", "middle", "x1", "x2", "back", "wheel"}
	if got := ButtonOrder(counts); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCountTableCloneAndTotal(t *testing.T) {
	table := NewCountTable()
	table[Keyboard]["a"] = 3
	table[Keyboard]["b"] = 4
	clone := table.Clone()
	clone[Keyboard]["a"] = 100
	if table[Keyboard]["a"] != 3 {
		t.Fatalf("clone aliased the original")
	}
	if table.Total(Keyboard) != 7 || table.Total(Mouse) != 0 {
		t.Fatalf("unexpected totals %d/%d", table.Total(Keyboard), table.Total(Mouse))
	}
}
