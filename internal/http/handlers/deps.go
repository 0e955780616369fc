package handlers

import (
	"equisport/internal/repos"
	"equisport/internal/services"
	"equisport/internal/store"
)

type Deps struct {
	EquipmentHandler *EquipmentHandler
	CategoryHandler  *CategoryHandler
	ReviewHandler    *ReviewHandler
	BlogHandler      *BlogHandler
}

// NewDeps wires repos, services, and handlers off the store gateway.
// Construction happens before any route is live, so no handler can ever
// observe a missing dependency.
func NewDeps(g store.Gateway) *Deps {
	equipRepo := repos.NewEquipmentRepo(g.Equipments())
	catRepo := repos.NewCategoryRepo(g.Equipments())
	reviewRepo := repos.NewReviewRepo(g.Reviews())
	blogRepo := repos.NewBlogRepo(g.BlogPosts())

	catalogSvc := services.NewCatalogService(equipRepo, catRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	blogSvc := services.NewBlogService(blogRepo)

	return &Deps{
		EquipmentHandler: &EquipmentHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		ReviewHandler:    &ReviewHandler{Reviews: reviewSvc},
		BlogHandler:      &BlogHandler{Blog: blogSvc},
	}
}
