package service

import (
	"context"
	"fmt"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/pricing"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PublicService assembles the customer-facing catalogue: enabled rows
// only, with each menu item priced through the effective price
// resolver.
type PublicService struct {
	categoryRepo repo.CategoryRepository
	sectionRepo  repo.SectionRepository
	menuItemRepo repo.MenuItemRepository
	priceRepo    repo.TemporaryPriceRepository
	logger       *zap.SugaredLogger
}

func NewPublicService(
	categoryRepo repo.CategoryRepository,
	sectionRepo repo.SectionRepository,
	menuItemRepo repo.MenuItemRepository,
	priceRepo repo.TemporaryPriceRepository,
	logger *zap.SugaredLogger,
) *PublicService {
	return &PublicService{
		categoryRepo: categoryRepo,
		sectionRepo:  sectionRepo,
		menuItemRepo: menuItemRepo,
		priceRepo:    priceRepo,
		logger:       logger,
	}
}

type PublicCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Order       int    `json:"order"`
}

type PublicMenuItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description,omitempty"`
	BasePrice      int64  `json:"base_price"`
	EffectivePrice int64  `json:"effective_price"`
	ImageURL       string `json:"image_url,omitempty"`
	Available      bool   `json:"available"`
}

type PublicSection struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Order       int              `json:"order"`
	MenuItems   []PublicMenuItem `json:"menu_items"`
}

type PublicCategoryTree struct {
	PublicCategory
	Sections []PublicSection `json:"sections"`
}

func (s *PublicService) ListCategories(ctx context.Context) ([]PublicCategory, error) {
	categories, err := s.categoryRepo.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load public categories: %w", err)
	}

	out := make([]PublicCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, PublicCategory{
			ID:          c.ID.Hex(),
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			ImageURL:    c.ImageURL,
			Order:       c.Order,
		})
	}

	return out, nil
}

// GetCategoryTree returns one enabled category with its enabled
// sections and items. Every item's effective price is resolved against
// the same timestamp, captured once, so the whole response is a
// consistent temporal snapshot.
func (s *PublicService) GetCategoryTree(ctx context.Context, idOrSlug string) (*PublicCategoryTree, error) {
	var category *domain.Category
	var err error

	if oid, hexErr := primitive.ObjectIDFromHex(idOrSlug); hexErr == nil {
		category, err = s.categoryRepo.GetByID(ctx, oid)
	} else {
		category, err = s.categoryRepo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}
	if !category.Enabled {
		return nil, repo.ErrNotFound
	}

	sections, err := s.sectionRepo.ListEnabledByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.menuItemRepo.ListEnabledByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	prices, err := s.priceRepo.ListByMenuItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	pricesByItem := make(map[primitive.ObjectID][]domain.TemporaryPrice, len(items))
	for _, price := range prices {
		pricesByItem[price.MenuItemID] = append(pricesByItem[price.MenuItemID], price)
	}

	// one snapshot instant for every price in the response
	now := time.Now()

	itemsBySection := make(map[primitive.ObjectID][]PublicMenuItem, len(sections))
	for _, item := range items {
		effectivePrice, _ := pricing.Resolve(item.BasePrice, pricesByItem[item.ID], now)
		itemsBySection[item.SectionID] = append(itemsBySection[item.SectionID], PublicMenuItem{
			ID:             item.ID.Hex(),
			Name:           item.Name,
			Slug:           item.Slug,
			Description:    item.Description,
			BasePrice:      item.BasePrice,
			EffectivePrice: effectivePrice,
			ImageURL:       item.ImageURL,
			Available:      item.Available,
		})
	}

	tree := &PublicCategoryTree{
		PublicCategory: PublicCategory{
			ID:          category.ID.Hex(),
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
			ImageURL:    category.ImageURL,
			Order:       category.Order,
		},
		Sections: make([]PublicSection, 0, len(sections)),
	}

	for _, section := range sections {
		menuItems := itemsBySection[section.ID]
		if menuItems == nil {
			menuItems = []PublicMenuItem{}
		}
		tree.Sections = append(tree.Sections, PublicSection{
			ID:          section.ID.Hex(),
			Name:        section.Name,
			Slug:        section.Slug,
			Description: section.Description,
			ImageURL:    section.ImageURL,
			Order:       section.Order,
			MenuItems:   menuItems,
		})
	}

	return tree, nil
}
