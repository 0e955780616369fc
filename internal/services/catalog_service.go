package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"equisport/internal/domain"
	"equisport/internal/repos"
)

// CatalogService fronts the equipment collection and its derived
// category rollup. Every operation is a single store round trip.
type CatalogService struct {
	Equip *repos.EquipmentRepo
	Cats  *repos.CategoryRepo
}

func NewCatalogService(equip *repos.EquipmentRepo, cats *repos.CategoryRepo) *CatalogService {
	return &CatalogService{Equip: equip, Cats: cats}
}

func (s *CatalogService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.Equip.List(ctx)
}

func (s *CatalogService) EquipmentForHome(ctx context.Context) ([]domain.Equipment, error) {
	return s.Equip.ForHome(ctx)
}

func (s *CatalogService) SortedEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.Equip.Sorted(ctx)
}

func (s *CatalogService) EquipmentByOwner(ctx context.Context, email string) ([]domain.Equipment, error) {
	return s.Equip.ByOwner(ctx, email)
}

func (s *CatalogService) EquipmentByCategory(ctx context.Context, category string) ([]domain.Equipment, error) {
	return s.Equip.ByCategory(ctx, category)
}

func (s *CatalogService) SearchEquipment(ctx context.Context, q string) ([]domain.Equipment, error) {
	return s.Equip.Search(ctx, q)
}

func (s *CatalogService) DiscountedEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.Equip.Discounted(ctx)
}

func (s *CatalogService) GetEquipment(ctx context.Context, id primitive.ObjectID) (domain.Equipment, error) {
	return s.Equip.Get(ctx, id)
}

func (s *CatalogService) CreateEquipment(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return s.Equip.Create(ctx, doc)
}

func (s *CatalogService) UpsertEquipment(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return s.Equip.Upsert(ctx, id, fields)
}

func (s *CatalogService) DeleteEquipment(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.Equip.Delete(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return s.Cats.Summaries(ctx)
}
