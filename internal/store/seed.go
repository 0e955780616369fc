package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"equisport/internal/domain"
)

// SeedIfEmpty loads demo catalog data on a fresh database. Safe to run on
// every startup: it only writes when the equipments collection is empty,
// and user seeding checks per email.
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	n, err := s.Equipments().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n == 0 {
		log.Println("[seed] inserting demo equipments/reviews/blog posts")
		for _, doc := range demoEquipments {
			if _, err := s.Equipments().InsertOne(ctx, doc); err != nil {
				return err
			}
		}
		for _, doc := range demoReviews {
			if _, err := s.Reviews().InsertOne(ctx, doc); err != nil {
				return err
			}
		}
		for _, doc := range demoBlogPosts {
			if _, err := s.BlogPosts().InsertOne(ctx, doc); err != nil {
				return err
			}
		}
	}
	return s.seedUsers(ctx)
}

func (s *Store) seedUsers(ctx context.Context) error {
	users := []struct {
		Email, Name, Password string
	}{
		{"alice@equisport.test", "Alice", "Passw0rd!"},
		{"bob@equisport.test", "Bob", "Passw0rd!"},
	}
	for _, u := range users {
		n, err := s.Users().CountDocuments(ctx, bson.M{"email": u.Email})
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
		if err != nil {
			return err
		}
		doc := domain.User{Email: u.Email, Name: u.Name, PasswordHash: string(hash)}
		if _, err := s.Users().InsertOne(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

var demoEquipments = []bson.M{
	{
		"item": "Trailhead 2-Person Tent", "category": "Camping",
		"price": 129.99, "originalPrice": 159.99, "rating": 4.6,
		"image":     "https://images.equisport.test/camping/tent-trailhead.jpg",
		"userEmail": "alice@equisport.test",
	},
	{
		"item": "Summit Sleeping Bag", "category": "Camping",
		"price": 74.50, "rating": 4.2,
		"image":     "https://images.equisport.test/camping/bag-summit.jpg",
		"userEmail": "alice@equisport.test",
	},
	{
		"item": "Roadmaster Cycling Helmet", "category": "Cycling",
		"price": 45.00, "originalPrice": 60.00, "rating": 4.8,
		"image":     "https://images.equisport.test/cycling/helmet-roadmaster.jpg",
		"userEmail": "bob@equisport.test",
	},
	{
		"item": "Velo Pro Gloves", "category": "Cycling",
		"price": 19.99, "rating": 3.9,
		"image":     "https://images.equisport.test/cycling/gloves-velo.jpg",
		"userEmail": "bob@equisport.test",
	},
	{
		"item": "StrikeForce Football", "category": "Football",
		"price": 24.99, "originalPrice": 24.99, "rating": 4.4,
		"image":     "https://images.equisport.test/football/ball-strikeforce.jpg",
		"userEmail": "alice@equisport.test",
	},
	{
		"item": "Baseline Tennis Racket", "category": "Tennis",
		"price": 89.00, "originalPrice": 119.00, "rating": 4.7,
		"image":     "https://images.equisport.test/tennis/racket-baseline.jpg",
		"userEmail": "bob@equisport.test",
	},
	{
		"item": "Court King Tennis Balls (3 pack)", "category": "Tennis",
		"price": 9.99, "rating": 4.1,
		"image":     "https://images.equisport.test/tennis/balls-courtking.jpg",
		"userEmail": "alice@equisport.test",
	},
}

var demoReviews = []bson.M{
	{
		"product": "Trailhead 2-Person Tent", "brand": "Trailhead",
		"reviews": bson.A{
			bson.M{"rating": 5, "comment": "Kept us dry through a storm.", "date": "2025-06-14"},
			bson.M{"rating": 4, "comment": "A bit heavy but roomy.", "date": "2025-07-02"},
		},
	},
	{
		"product": "Roadmaster Cycling Helmet", "brand": "Roadmaster",
		"reviews": bson.A{
			bson.M{"rating": 5, "comment": "Great fit, great vents.", "date": "2025-07-21"},
			bson.M{"rating": 3, "comment": "Strap wore out quickly.", "date": "2025-05-30"},
		},
	},
	{
		"product": "Baseline Tennis Racket", "brand": "Baseline",
		"reviews": bson.A{
			bson.M{"rating": 4, "comment": "Solid control for the price.", "date": "2025-08-01"},
		},
	},
}

var demoBlogPosts = []bson.M{
	{
		"title":       "Packing Light for a Weekend Hike",
		"author":      "Alice",
		"publishDate": "2025-07-18",
		"image":       "https://images.equisport.test/blog/packing-light.jpg",
		"content":     "A short checklist that keeps your pack under ten kilos.",
	},
	{
		"title":       "Choosing Your First Road Bike",
		"author":      "Bob",
		"publishDate": "2025-08-05",
		"image":       "https://images.equisport.test/blog/first-road-bike.jpg",
		"content":     "Frame size first, components second, paint job last.",
	},
	{
		"title":       "Tennis Racket Strings Explained",
		"author":      "Alice",
		"publishDate": "2025-06-27",
		"image":       "https://images.equisport.test/blog/strings.jpg",
		"content":     "Tension, gauge, and why hybrids are worth a try.",
	},
}
