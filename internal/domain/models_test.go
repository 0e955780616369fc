package domain

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEquipmentJSONFlattensExtra(t *testing.T) {
	price := 19.99
	e := Equipment{
		ID:    primitive.NewObjectID(),
		Item:  "Cycle Gloves",
		Price: &price,
		Extra: bson.M{"color": "black", "sizes": bson.A{"S", "M"}},
	}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if m["_id"] != e.ID.Hex() {
		t.Fatalf("_id must serialize as hex, got %v", m["_id"])
	}
	if m["color"] != "black" {
		t.Fatalf("extra field not flattened: %v", m)
	}
	if _, ok := m["Extra"]; ok {
		t.Fatalf("Extra wrapper leaked into JSON: %v", m)
	}
	// Absent optional numerics stay absent instead of becoming zero.
	if _, ok := m["originalPrice"]; ok {
		t.Fatalf("nil originalPrice must be omitted: %v", m)
	}
	if _, ok := m["rating"]; ok {
		t.Fatalf("nil rating must be omitted: %v", m)
	}
}

func TestEquipmentBSONRoundTrip(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"item": "Trail Tent", "category": "Camping",
		"price": 120.0, "originalPrice": 150.0,
		"season": "summer",
	})
	if err != nil {
		t.Fatal(err)
	}
	var e Equipment
	if err := bson.Unmarshal(raw, &e); err != nil {
		t.Fatal(err)
	}
	if e.Item != "Trail Tent" || e.Price == nil || *e.Price != 120.0 {
		t.Fatalf("known fields wrong: %+v", e)
	}
	if e.Extra["season"] != "summer" {
		t.Fatalf("unknown field must land in Extra: %+v", e.Extra)
	}
}
