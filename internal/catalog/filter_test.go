package catalog

import (
	"reflect"
	"testing"

	"botilleria/internal/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Vino Tinto Reserva", Description: "Cabernet Sauvignon del valle del Maipo", Category: "vinos", PriceCLP: 8990},
		{ID: "2", Name: "Vino Blanco", Description: "Sauvignon Blanc fresco", Category: "vinos", PriceCLP: 6990},
		{ID: "3", Name: "Cerveza Artesanal", Description: "IPA con notas de tinto... no, de lúpulo", Category: "cervezas", PriceCLP: 2990},
		{ID: "4", Name: "Pisco Premium", Description: "Destilado 40 grados", Category: "destilados", PriceCLP: 12990},
	}
}

func TestFilterCategoryAndQuery(t *testing.T) {
	got := Filter(testProducts(), "vinos", "tinto")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only product 1, got %+v", got)
	}
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	got := Filter(testProducts(), CategoryAll, "TINTO")
	// Product 3 mentions "tinto" in its description and must match too.
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected products 1 and 3 in order, got %+v", got)
	}
}

func TestFilterCategoryIsCaseSensitive(t *testing.T) {
	if got := Filter(testProducts(), "Vinos", ""); len(got) != 0 {
		t.Fatalf("expected no matches for %q, got %+v", "Vinos", got)
	}
}

func TestFilterEmptyQueryPassesCategoryFilter(t *testing.T) {
	got := Filter(testProducts(), "vinos", "")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("expected both vinos in order, got %+v", got)
	}
}

func TestFilterAllIsPassThrough(t *testing.T) {
	products := testProducts()
	got := Filter(products, CategoryAll, "")
	if !reflect.DeepEqual(got, products) {
		t.Fatalf("expected full catalog in order, got %+v", got)
	}
}

func TestFilterQueryMatchesCategoryField(t *testing.T) {
	got := Filter(testProducts(), CategoryAll, "cervezas")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected product 3, got %+v", got)
	}
}

func TestFilterRequiresBothPredicates(t *testing.T) {
	// "tinto" matches product 3's description, but category excludes it.
	if got := Filter(testProducts(), "vinos", "lúpulo"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	want := testProducts()
	Filter(products, "vinos", "tinto")
	if !reflect.DeepEqual(products, want) {
		t.Fatalf("input slice was mutated: %+v", products)
	}
}
