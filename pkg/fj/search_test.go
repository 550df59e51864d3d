package fj

import "testing"

var searchFixture = `{
	"store": {
		"book": [
			{"title": "Go in Action", "price": 30, "tags": ["go","systems"]},
			{"title": "The Go Programming Language", "price": 35, "tags": ["go","reference"]},
			{"title": "Learning Rust", "price": 25, "tags": ["rust"]}
		],
		"owner": {"name": "Dale", "active": true}
	}
}`

func TestSearchSubstring(t *testing.T) {
	results := Search(searchFixture, "Go")
	if len(results) == 0 {
		t.Fatal("Search should find at least one match")
	}
	for _, r := range results {
		if r.IsArray() || r.IsObject() {
			t.Errorf("Search returned a non-leaf: %v", r.Raw())
		}
	}
}

func TestSearchByKey(t *testing.T) {
	results := SearchByKey(searchFixture, "title")
	if len(results) != 3 {
		t.Fatalf("SearchByKey(title) found %d; want 3", len(results))
	}
}

func TestSearchByKeyEmpty(t *testing.T) {
	if results := SearchByKey(searchFixture); len(results) != 0 {
		t.Errorf("SearchByKey() with no keys = %v; want empty", results)
	}
}

func TestContains(t *testing.T) {
	if !Contains(searchFixture, "store.owner.name", "Dal") {
		t.Error("Contains should match substring")
	}
	if Contains(searchFixture, "store.owner.missing", "x") {
		t.Error("Contains on missing path should be false")
	}
}

func TestFindPath(t *testing.T) {
	path := FindPath(searchFixture, "Dale")
	if path == "" {
		t.Fatal("FindPath should locate Dale")
	}
	if !Get(searchFixture, path).Exists() {
		t.Errorf("FindPath result %q does not resolve", path)
	}
}

func TestCount(t *testing.T) {
	if got := Count(searchFixture, "store.book"); got != 3 {
		t.Errorf("Count(store.book) = %d; want 3", got)
	}
	if got := Count(searchFixture, "store.owner.name"); got != 1 {
		t.Errorf("Count(scalar) = %d; want 1", got)
	}
	if got := Count(searchFixture, "nope"); got != 0 {
		t.Errorf("Count(missing) = %d; want 0", got)
	}
}

func TestSumMinMaxAvg(t *testing.T) {
	if got := Sum(searchFixture, "store.book.#.price"); got != 90 {
		t.Errorf("Sum = %v; want 90", got)
	}
	min, ok := Min(searchFixture, "store.book.#.price")
	if !ok || min != 25 {
		t.Errorf("Min = %v,%v; want 25,true", min, ok)
	}
	max, ok := Max(searchFixture, "store.book.#.price")
	if !ok || max != 35 {
		t.Errorf("Max = %v,%v; want 35,true", max, ok)
	}
	avg, ok := Avg(searchFixture, "store.book.#.price")
	if !ok || avg != 30 {
		t.Errorf("Avg = %v,%v; want 30,true", avg, ok)
	}
}

func TestSumOnMissingPath(t *testing.T) {
	if got := Sum(searchFixture, "nope"); got != 0 {
		t.Errorf("Sum(missing) = %v; want 0", got)
	}
	if _, ok := Min(searchFixture, "nope"); ok {
		t.Error("Min(missing) ok = true; want false")
	}
}

func TestFilterAndFirst(t *testing.T) {
	cheap := Filter(searchFixture, "store.book", func(c Context) bool {
		return c.Get("price").Int() < 30
	})
	if len(cheap) != 1 {
		t.Fatalf("Filter(price<30) = %d results; want 1", len(cheap))
	}
	first := First(searchFixture, "store.book", func(c Context) bool {
		return c.Get("price").Int() > 30
	})
	if !first.Exists() || first.Get("title").String() != "The Go Programming Language" {
		t.Errorf("First(price>30) = %v", first.Raw())
	}
}

func TestDistinct(t *testing.T) {
	results := Distinct(`[1,2,2,3,1]`, "@this")
	if len(results) != 3 {
		t.Fatalf("Distinct = %d; want 3", len(results))
	}
}

func TestPluckProjectsFields(t *testing.T) {
	out := Pluck(searchFixture, "store.book", "title", "price")
	if len(out) != 3 {
		t.Fatalf("Pluck = %d results; want 3", len(out))
	}
	if out[0].Get("title").String() != "Go in Action" {
		t.Errorf("Pluck[0].title = %q; want Go in Action", out[0].Get("title").String())
	}
	if out[0].Get("tags").Exists() {
		t.Error("Pluck should omit unlisted fields")
	}
}

func TestSearchMatchGlob(t *testing.T) {
	results := SearchMatch(searchFixture, "Go*")
	if len(results) == 0 {
		t.Error("SearchMatch(Go*) should find matches")
	}
}

func TestGroupBy(t *testing.T) {
	json := `[{"kind":"a","v":1},{"kind":"b","v":2},{"kind":"a","v":3}]`
	groups := GroupBy(json, "@this", "kind")
	if len(groups["a"]) != 2 || len(groups["b"]) != 1 {
		t.Errorf("GroupBy = %v; want a:2 b:1", groups)
	}
}

func TestSortByNumericField(t *testing.T) {
	sorted := SortBy(searchFixture, "store.book", "price", true)
	if sorted[0].Get("price").Int() != 25 || sorted[2].Get("price").Int() != 35 {
		t.Errorf("SortBy ascending not ordered: %v", sorted)
	}
	desc := SortBy(searchFixture, "store.book", "price", false)
	if desc[0].Get("price").Int() != 35 {
		t.Errorf("SortBy descending not ordered: %v", desc)
	}
}

func TestCoerceToScalar(t *testing.T) {
	var price int64
	ctx := Get(searchFixture, "store.book.0.price")
	if err := CoerceTo(ctx, &price); err != nil {
		t.Fatalf("CoerceTo error: %v", err)
	}
	if price != 30 {
		t.Errorf("CoerceTo = %d; want 30", price)
	}
}

func TestCoerceToMap(t *testing.T) {
	var owner map[string]any
	ctx := Get(searchFixture, "store.owner")
	if err := CoerceTo(ctx, &owner); err != nil {
		t.Fatalf("CoerceTo error: %v", err)
	}
	if owner["name"] != "Dale" {
		t.Errorf("CoerceTo map = %v; want name=Dale", owner)
	}
}

func TestCollectFloat64(t *testing.T) {
	got := CollectFloat64(searchFixture, "store.book.#.price")
	if len(got) != 3 {
		t.Fatalf("CollectFloat64 = %v; want 3 values", got)
	}
}
