package repos_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"equisport/internal/domain"
	"equisport/internal/repos"
	"equisport/internal/store/storetest"
)

func seededEquipments(t *testing.T) *storetest.Collection {
	t.Helper()
	return storetest.NewCollection(
		bson.M{"item": "Trail Tent", "category": "Camping", "price": 120.0, "originalPrice": 150.0, "rating": 4.5, "userEmail": "alice@test"},
		bson.M{"item": "Sleeping Bag", "category": "Camping", "price": 70.0, "rating": 4.5, "userEmail": "alice@test"},
		bson.M{"item": "Road Helmet", "category": "Cycling", "price": 45.0, "originalPrice": 60.0, "rating": 4.8, "userEmail": "bob@test"},
		bson.M{"item": "Cycle Gloves", "category": "Cycling", "price": 20.0, "originalPrice": 20.0, "rating": 3.9, "userEmail": "bob@test"},
		bson.M{"item": "Tennis Racket", "category": "Tennis", "price": 89.0, "userEmail": ""},
	)
}

func TestEquipmentRepo_Search(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))

	got, err := r.Search(context.Background(), "cycl")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 cycling matches, got %d", len(got))
	}
	for _, e := range got {
		if e.Category != "Cycling" && e.Item != "Cycle Gloves" {
			t.Fatalf("unexpected match: %+v", e)
		}
	}

	// Matches item names as well as categories.
	got, err = r.Search(context.Background(), "TENT")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Item != "Trail Tent" {
		t.Fatalf("case-insensitive item match failed: %+v", got)
	}
}

func TestEquipmentRepo_SearchCap(t *testing.T) {
	col := storetest.NewCollection()
	for i := 0; i < 25; i++ {
		if _, err := col.InsertOne(context.Background(), bson.M{"item": "Ball", "category": "Football", "price": 10.0}); err != nil {
			t.Fatal(err)
		}
	}
	r := repos.NewEquipmentRepo(col)
	got, err := r.Search(context.Background(), "ball")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("want search capped at 10, got %d", len(got))
	}
}

func TestEquipmentRepo_SearchQuotesPattern(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))
	// A regex metacharacter must behave as a literal, not match-all.
	got, err := r.Search(context.Background(), ".*")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("metacharacters must not act as a pattern, got %d matches", len(got))
	}
}

func TestEquipmentRepo_Discounted(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))
	got, err := r.Discounted(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 discounted, got %d", len(got))
	}
	for _, e := range got {
		if e.OriginalPrice == nil {
			t.Fatalf("record without originalPrice leaked in: %+v", e)
		}
		if *e.Price >= *e.OriginalPrice {
			t.Fatalf("price %v not below originalPrice %v", *e.Price, *e.OriginalPrice)
		}
	}
}

func TestEquipmentRepo_Sorted(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))
	got, err := r.Sorted(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("want all 5 records, got %d", len(got))
	}
	ratingOf := func(e domain.Equipment) float64 {
		if e.Rating == nil {
			return -1
		}
		return *e.Rating
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if ratingOf(prev) < ratingOf(cur) {
			t.Fatalf("rating order broken at %d: %v < %v", i, ratingOf(prev), ratingOf(cur))
		}
		if ratingOf(prev) == ratingOf(cur) && *prev.Price < *cur.Price {
			t.Fatalf("price tie-break broken at %d", i)
		}
	}
}

func TestEquipmentRepo_ByOwner(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))

	got, err := r.ByOwner(context.Background(), "alice@test")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records for alice, got %d", len(got))
	}

	// Empty email is a literal empty-string equality, not a wildcard.
	got, err = r.ByOwner(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Item != "Tennis Racket" {
		t.Fatalf("empty email must match only the empty-string owner, got %+v", got)
	}
}

func TestEquipmentRepo_ByCategorySubstring(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))
	got, err := r.ByCategory(context.Background(), "camp")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf(`want "camp" to match Camping twice, got %d`, len(got))
	}
}

func TestEquipmentRepo_GetNotFound(t *testing.T) {
	r := repos.NewEquipmentRepo(seededEquipments(t))
	_, err := r.Get(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestEquipmentRepo_UpsertCreatesThenMerges(t *testing.T) {
	col := storetest.NewCollection()
	r := repos.NewEquipmentRepo(col)
	id := primitive.NewObjectID()

	res, err := r.Upsert(context.Background(), id, bson.M{"item": "Kayak", "price": 300.0, "category": "Water"})
	if err != nil {
		t.Fatal(err)
	}
	if res.UpsertedCount != 1 {
		t.Fatalf("want upsert on missing id, got %+v", res)
	}

	// The created document is retrievable by the same id.
	got, err := r.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Item != "Kayak" || got.Category != "Water" {
		t.Fatalf("upserted doc wrong: %+v", got)
	}

	// A second upsert only overwrites the named fields.
	res, err = r.Upsert(context.Background(), id, bson.M{"price": 250.0})
	if err != nil {
		t.Fatal(err)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("want match on existing id, got %+v", res)
	}
	got, err = r.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if *got.Price != 250.0 {
		t.Fatalf("price not updated: %+v", got)
	}
	if got.Item != "Kayak" || got.Category != "Water" {
		t.Fatalf("unnamed fields must stay untouched: %+v", got)
	}
}

func TestEquipmentRepo_DeleteIdempotent(t *testing.T) {
	col := seededEquipments(t)
	r := repos.NewEquipmentRepo(col)

	res, err := r.Delete(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatal(err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("deleting a missing id must report zero, got %d", res.DeletedCount)
	}

	all, err := r.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	res, err = r.Delete(context.Background(), all[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if res.DeletedCount != 1 {
		t.Fatalf("want one deletion, got %d", res.DeletedCount)
	}
}

func TestEquipmentRepo_CreateKeepsUnknownFields(t *testing.T) {
	col := storetest.NewCollection()
	r := repos.NewEquipmentRepo(col)
	res, err := r.Create(context.Background(), bson.M{"item": "Compass", "price": 15.0, "warrantyYears": 2.0})
	if err != nil {
		t.Fatal(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	got, err := r.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := got.Extra["warrantyYears"]; !ok || v != 2.0 {
		t.Fatalf("unknown field dropped: %+v", got.Extra)
	}
}
