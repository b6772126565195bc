package cart

import (
	"reflect"
	"testing"

	"botilleria/internal/domain"
)

var (
	vino    = domain.Product{ID: "1", Name: "Vino Tinto", PriceCLP: 8990, Image: "https://img/1.jpg", Category: "vinos"}
	cerveza = domain.Product{ID: "2", Name: "Cerveza", PriceCLP: 2990, Image: "https://img/2.jpg", Category: "cervezas"}
)

func TestAddItemStartsAtOne(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Items[0].Name != "Vino Tinto" || snap.Items[0].PriceCLP != 8990 {
		t.Fatalf("line does not carry product fields: %+v", snap.Items[0])
	}
}

func TestAddItemRepeatedlyCapsAtMax(t *testing.T) {
	for _, calls := range []int{1, 5, 10, 11, 25} {
		s := NewStore()
		for i := 0; i < calls; i++ {
			s.AddItem(vino)
		}
		snap := s.Snapshot()
		if len(snap.Items) != 1 {
			t.Fatalf("%d calls: expected one line, got %d", calls, len(snap.Items))
		}
		want := calls
		if want > MaxQuantity {
			want = MaxQuantity
		}
		if snap.Items[0].Quantity != want {
			t.Fatalf("%d calls: expected quantity %d, got %d", calls, want, snap.Items[0].Quantity)
		}
	}
}

func TestDerivedTotalsAlwaysMatchItems(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	s.AddItem(vino)
	s.AddItem(cerveza)
	snap := s.Snapshot()
	if snap.TotalCLP != 2*8990+2990 {
		t.Fatalf("unexpected total %d", snap.TotalCLP)
	}
	if snap.Count != 3 {
		t.Fatalf("unexpected count %d", snap.Count)
	}

	s.UpdateQuantity("2", 4)
	snap = s.Snapshot()
	if snap.TotalCLP != 2*8990+4*2990 || snap.Count != 6 {
		t.Fatalf("totals diverged after update: %+v", snap)
	}
}

func TestUpdateQuantityClamps(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {7, 7}, {10, 10}, {11, 10}, {100, 10},
	}
	for _, tc := range cases {
		s := NewStore()
		s.AddItem(vino)
		s.UpdateQuantity("1", tc.in)
		snap := s.Snapshot()
		if len(snap.Items) != 1 {
			t.Fatalf("quantity %d: line was removed", tc.in)
		}
		if snap.Items[0].Quantity != tc.want {
			t.Fatalf("quantity %d: expected %d, got %d", tc.in, tc.want, snap.Items[0].Quantity)
		}
	}
}

func TestUpdateQuantityAbsentIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	before := s.Snapshot()
	s.UpdateQuantity("missing", 5)
	if got := s.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Fatalf("cart changed: %+v", got)
	}
}

func TestRemoveItemAbsentIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	s.AddItem(cerveza)
	before := s.Snapshot()
	s.RemoveItem("missing")
	if got := s.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Fatalf("cart changed: %+v", got)
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	s.AddItem(cerveza)
	s.AddItem(domain.Product{ID: "3", Name: "Pisco", PriceCLP: 12990})
	s.RemoveItem("2")
	snap := s.Snapshot()
	if len(snap.Items) != 2 || snap.Items[0].ID != "1" || snap.Items[1].ID != "3" {
		t.Fatalf("unexpected order %+v", snap.Items)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	s.AddItem(cerveza)
	s.Clear()
	snap := s.Snapshot()
	if len(snap.Items) != 0 || snap.TotalCLP != 0 || snap.Count != 0 {
		t.Fatalf("cart not empty: %+v", snap)
	}
}

func TestSubscribeObservesAppliedSnapshots(t *testing.T) {
	s := NewStore()
	var got []domain.CartSnapshot
	s.Subscribe(func(snap domain.CartSnapshot) {
		got = append(got, snap)
	})
	s.AddItem(vino)
	s.UpdateQuantity("1", 3)
	s.RemoveItem("1")
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].Count != 1 || got[1].Count != 3 || got[2].Count != 0 {
		t.Fatalf("unexpected sequence %+v", got)
	}
}

func TestSnapshotIsIsolatedFromStore(t *testing.T) {
	s := NewStore()
	s.AddItem(vino)
	snap := s.Snapshot()
	snap.Items[0].Quantity = 99
	if s.Snapshot().Items[0].Quantity != 1 {
		t.Fatalf("store mutated through snapshot")
	}
}
