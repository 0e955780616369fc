package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Equipment is one catalog document. Known fields are typed; anything else
// the caller stored rides along in Extra so schemaless writes survive a
// read untouched.
type Equipment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Item          string             `bson:"item,omitempty"`
	Category      string             `bson:"category,omitempty"`
	Image         string             `bson:"image,omitempty"`
	UserEmail     string             `bson:"userEmail,omitempty"`
	Price         *float64           `bson:"price,omitempty"`
	OriginalPrice *float64           `bson:"originalPrice,omitempty"`
	Rating        *float64           `bson:"rating,omitempty"`
	Extra         bson.M             `bson:",inline"`
}

// MarshalJSON flattens Extra into the top-level object so clients see the
// stored document shape, not a typed/extra split.
func (e Equipment) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	for k, v := range e.Extra {
		m[k] = v
	}
	if !e.ID.IsZero() {
		m["_id"] = e.ID.Hex()
	}
	if e.Item != "" {
		m["item"] = e.Item
	}
	if e.Category != "" {
		m["category"] = e.Category
	}
	if e.Image != "" {
		m["image"] = e.Image
	}
	if e.UserEmail != "" {
		m["userEmail"] = e.UserEmail
	}
	if e.Price != nil {
		m["price"] = *e.Price
	}
	if e.OriginalPrice != nil {
		m["originalPrice"] = *e.OriginalPrice
	}
	if e.Rating != nil {
		m["rating"] = *e.Rating
	}
	return json.Marshal(m)
}

// CategorySummary is a derived row from the category rollup; it is never
// stored.
type CategorySummary struct {
	ID           string `bson:"_id" json:"_id"`
	Name         string `bson:"name" json:"name"`
	Image        string `bson:"image" json:"image"`
	ProductCount int64  `bson:"productCount" json:"productCount"`
}

// ReviewFeedItem is one flattened sub-review with its product context.
// The review sub-document stays open: rating, comment, date, plus
// whatever else the source record carried.
type ReviewFeedItem struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Product string             `bson:"product" json:"product"`
	Brand   string             `bson:"brand" json:"brand"`
	Review  bson.M             `bson:"review" json:"review"`
}

// BlogPost documents order by publishDate descending; the field is an
// ISO-8601 string so lexicographic order is chronological order.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title,omitempty"`
	Author      string             `bson:"author,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Content     string             `bson:"content,omitempty"`
	PublishDate string             `bson:"publishDate,omitempty"`
	Extra       bson.M             `bson:",inline"`
}

func (p BlogPost) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	for k, v := range p.Extra {
		m[k] = v
	}
	if !p.ID.IsZero() {
		m["_id"] = p.ID.Hex()
	}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.Author != "" {
		m["author"] = p.Author
	}
	if p.Image != "" {
		m["image"] = p.Image
	}
	if p.Content != "" {
		m["content"] = p.Content
	}
	if p.PublishDate != "" {
		m["publishDate"] = p.PublishDate
	}
	return json.Marshal(m)
}
