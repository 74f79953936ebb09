package repository

import (
	"strings"
	"testing"

	"carmarket/structs"
)

func TestCarFilterWhereExactMatch(t *testing.T) {
	priceMax := 30000.0
	w := carFilterWhere(&structs.CarListFilter{
		Make:     "Toyota",
		Model:    "Corolla",
		PriceMax: &priceMax,
	})

	clause := w.clause()
	if clause != " WHERE make = $1 AND model = $2 AND price <= $3" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if strings.Contains(clause, "ILIKE") {
		t.Error("make/model filter must be exact match, not pattern match")
	}
	if len(w.args) != 3 || w.args[0] != "Toyota" || w.args[1] != "Corolla" {
		t.Errorf("unexpected args %v", w.args)
	}
}

func TestCarFilterWhereEmpty(t *testing.T) {
	wNil := carFilterWhere(nil)
	if clause := wNil.clause(); clause != "" {
		t.Errorf("nil filter clause = %q, want empty", clause)
	}
	wZero := carFilterWhere(&structs.CarListFilter{})
	if clause := wZero.clause(); clause != "" {
		t.Errorf("zero filter clause = %q, want empty", clause)
	}
}
