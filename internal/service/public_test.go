package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// The fakes embed the repository interface so only the methods the
// read model touches need an implementation; anything else panics.

type fakeCategoryRepo struct {
	repo.CategoryRepository
	categories []domain.Category
}

func (f *fakeCategoryRepo) ListEnabled(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.categories {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeSectionRepo struct {
	repo.SectionRepository
	sections []domain.Section
}

func (f *fakeSectionRepo) ListEnabledByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.Section, error) {
	var out []domain.Section
	for _, s := range f.sections {
		if s.CategoryID == categoryID && s.Enabled {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeMenuItemRepo struct {
	repo.MenuItemRepository
	items []domain.MenuItem
}

func (f *fakeMenuItemRepo) ListEnabledByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range f.items {
		if item.CategoryID == categoryID && item.Enabled {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakePriceRepo struct {
	repo.TemporaryPriceRepository
	prices []domain.TemporaryPrice
}

func (f *fakePriceRepo) ListByMenuItems(ctx context.Context, menuItemIDs []primitive.ObjectID) ([]domain.TemporaryPrice, error) {
	wanted := make(map[primitive.ObjectID]bool, len(menuItemIDs))
	for _, id := range menuItemIDs {
		wanted[id] = true
	}
	var out []domain.TemporaryPrice
	for _, p := range f.prices {
		if wanted[p.MenuItemID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestGetCategoryTree(t *testing.T) {
	now := time.Now()

	categoryID := primitive.NewObjectID()
	sectionID := primitive.NewObjectID()
	otherSectionID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	plainItemID := primitive.NewObjectID()
	disabledItemID := primitive.NewObjectID()

	categories := &fakeCategoryRepo{categories: []domain.Category{
		{ID: categoryID, Name: "Drinks", Slug: "drinks", Enabled: true, Order: 1},
	}}
	sections := &fakeSectionRepo{sections: []domain.Section{
		{ID: sectionID, CategoryID: categoryID, Name: "Cocktails", Slug: "cocktails", Enabled: true, Order: 1},
		{ID: otherSectionID, CategoryID: categoryID, Name: "Softs", Slug: "softs", Enabled: true, Order: 2},
		{ID: primitive.NewObjectID(), CategoryID: categoryID, Name: "Hidden", Slug: "hidden", Enabled: false, Order: 3},
	}}
	items := &fakeMenuItemRepo{items: []domain.MenuItem{
		{ID: itemID, CategoryID: categoryID, SectionID: sectionID, Name: "Mojito", Slug: "mojito", BasePrice: 1200, Enabled: true, Available: true},
		{ID: plainItemID, CategoryID: categoryID, SectionID: sectionID, Name: "Negroni", Slug: "negroni", BasePrice: 1400, Enabled: true, Available: false},
		{ID: disabledItemID, CategoryID: categoryID, SectionID: sectionID, Name: "Off Menu", Slug: "off-menu", BasePrice: 900, Enabled: false, Available: true},
	}}
	prices := &fakePriceRepo{prices: []domain.TemporaryPrice{
		{ID: primitive.NewObjectID(), MenuItemID: itemID, RuleName: "Happy Hour", Price: 800,
			StartAt: now.Add(-time.Hour), EndAt: now.Add(time.Hour), Enabled: true},
		{ID: primitive.NewObjectID(), MenuItemID: itemID, RuleName: "Next Week", Price: 100,
			StartAt: now.Add(24 * time.Hour), EndAt: now.Add(48 * time.Hour), Enabled: true},
	}}

	svc := NewPublicService(categories, sections, items, prices, zap.NewNop().Sugar())

	tree, err := svc.GetCategoryTree(context.Background(), "drinks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Slug != "drinks" {
		t.Errorf("expected category drinks, got %s", tree.Slug)
	}
	if len(tree.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(tree.Sections))
	}

	cocktails := tree.Sections[0]
	if len(cocktails.MenuItems) != 2 {
		t.Fatalf("expected 2 items in cocktails, got %d", len(cocktails.MenuItems))
	}

	mojito := cocktails.MenuItems[0]
	if mojito.BasePrice != 1200 {
		t.Errorf("expected base price 1200, got %d", mojito.BasePrice)
	}
	if mojito.EffectivePrice != 800 {
		t.Errorf("expected active rule price 800, got %d", mojito.EffectivePrice)
	}

	negroni := cocktails.MenuItems[1]
	if negroni.EffectivePrice != 1400 {
		t.Errorf("expected base price fallback 1400, got %d", negroni.EffectivePrice)
	}
	if negroni.Available {
		t.Error("expected negroni to stay listed but unavailable")
	}

	// softs has no items but must still serialize as an empty list
	if tree.Sections[1].MenuItems == nil {
		t.Error("expected empty slice for section without items")
	}
}

func TestGetCategoryTreeByID(t *testing.T) {
	categoryID := primitive.NewObjectID()
	categories := &fakeCategoryRepo{categories: []domain.Category{
		{ID: categoryID, Name: "Food", Slug: "food", Enabled: true},
	}}
	svc := NewPublicService(categories, &fakeSectionRepo{}, &fakeMenuItemRepo{}, &fakePriceRepo{}, zap.NewNop().Sugar())

	tree, err := svc.GetCategoryTree(context.Background(), categoryID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.ID != categoryID.Hex() {
		t.Errorf("expected category %s, got %s", categoryID.Hex(), tree.ID)
	}
}

func TestGetCategoryTreeDisabled(t *testing.T) {
	categories := &fakeCategoryRepo{categories: []domain.Category{
		{ID: primitive.NewObjectID(), Name: "Secret", Slug: "secret", Enabled: false},
	}}
	svc := NewPublicService(categories, &fakeSectionRepo{}, &fakeMenuItemRepo{}, &fakePriceRepo{}, zap.NewNop().Sugar())

	if _, err := svc.GetCategoryTree(context.Background(), "secret"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound for disabled category, got %v", err)
	}
}

func TestListCategoriesSkipsDisabled(t *testing.T) {
	categories := &fakeCategoryRepo{categories: []domain.Category{
		{ID: primitive.NewObjectID(), Name: "Drinks", Slug: "drinks", Enabled: true, Order: 1},
		{ID: primitive.NewObjectID(), Name: "Secret", Slug: "secret", Enabled: false, Order: 2},
	}}
	svc := NewPublicService(categories, &fakeSectionRepo{}, &fakeMenuItemRepo{}, &fakePriceRepo{}, zap.NewNop().Sugar())

	out, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Slug != "drinks" {
		t.Errorf("expected only the enabled category, got %+v", out)
	}
}
