package service

import (
	"context"
	"fmt"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/ordering"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/slug"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/store/mongo"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CategoryService struct {
	categoryRepo repo.CategoryRepository
	sectionRepo  repo.SectionRepository
	menuItemRepo repo.MenuItemRepository
	priceRepo    repo.TemporaryPriceRepository
	storage      *mongo.Storage
	logger       *zap.SugaredLogger
	changePublisher
}

func NewCategoryService(
	categoryRepo repo.CategoryRepository,
	sectionRepo repo.SectionRepository,
	menuItemRepo repo.MenuItemRepository,
	priceRepo repo.TemporaryPriceRepository,
	broker queue.Broker,
	storage *mongo.Storage,
	logger *zap.SugaredLogger,
) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		sectionRepo:     sectionRepo,
		menuItemRepo:    menuItemRepo,
		priceRepo:       priceRepo,
		storage:         storage,
		logger:          logger,
		changePublisher: changePublisher{broker: broker, logger: logger},
	}
}

type CreateCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
	Order       *int
	Enabled     *bool
}

// UpdateCategoryInput carries one pointer per patchable field; nil means
// "leave unchanged".
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	Order       *int
	Enabled     *bool
}

func (s *CategoryService) List(ctx context.Context, filter repo.CategoryFilter) ([]domain.Category, int64, error) {
	return s.categoryRepo.List(ctx, filter)
}

func (s *CategoryService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput, actorID string) (*domain.Category, error) {
	categorySlug, err := slug.EnsureUnique(ctx, in.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.categoryRepo.SlugExists(ctx, candidate, primitive.NilObjectID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate category slug: %w", err)
	}

	var order int
	if in.Order != nil {
		order = *in.Order
	} else {
		orders, err := s.categoryRepo.Orders(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category order: %w", err)
		}
		order = ordering.Next(orders)
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	category := &domain.Category{
		Name:        slug.TitleCase(in.Name),
		Slug:        categorySlug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Order:       order,
		Enabled:     enabled,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventCreated, domain.EntityCategory, category.ID.Hex(), actorID, category.Name)
	s.logger.Infow("category created", "category_id", category.ID.Hex(), "slug", category.Slug)

	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, in UpdateCategoryInput, actorID string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		newSlug, err := slug.EnsureUnique(ctx, *in.Name, func(ctx context.Context, candidate string) (bool, error) {
			return s.categoryRepo.SlugExists(ctx, candidate, category.ID)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate category slug: %w", err)
		}
		category.Name = slug.TitleCase(*in.Name)
		category.Slug = newSlug
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.Order != nil {
		category.Order = *in.Order
	}
	if in.Enabled != nil {
		category.Enabled = *in.Enabled
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventUpdated, domain.EntityCategory, category.ID.Hex(), actorID, category.Name)

	return category, nil
}

// Reorder renumbers the full category set in one transaction so readers
// never observe a partially renumbered catalogue.
func (s *CategoryService) Reorder(ctx context.Context, ids []primitive.ObjectID, actorID string) error {
	current, err := s.categoryRepo.IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load category IDs: %w", err)
	}

	orders, err := ordering.Assign(ids, current)
	if err != nil {
		return err
	}

	session, err := s.storage.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	sessCtx := mongodrv.NewSessionContext(ctx, session)

	if err := session.StartTransaction(); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := s.categoryRepo.UpdateOrders(sessCtx, orders); err != nil {
		session.AbortTransaction(ctx)
		return fmt.Errorf("failed to apply category reorder: %w", err)
	}

	if err := session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, domain.EventReordered, domain.EntityCategory, "", actorID, fmt.Sprintf("%d categories", len(ids)))
	s.logger.Infow("categories reordered", "count", len(ids))

	return nil
}

func (s *CategoryService) SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool, actorID string) error {
	if err := s.categoryRepo.SetEnabled(ctx, id, enabled); err != nil {
		return err
	}

	s.publish(ctx, domain.EventEnabledChanged, domain.EntityCategory, id.Hex(), actorID, fmt.Sprintf("enabled=%t", enabled))

	return nil
}

// Delete removes a category and everything under it (sections, menu
// items, temporary prices) in one transaction.
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID, actorID string) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	session, err := s.storage.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	sessCtx := mongodrv.NewSessionContext(ctx, session)

	if err := session.StartTransaction(); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	itemIDs, err := s.menuItemRepo.IDsByCategory(sessCtx, id)
	if err != nil {
		session.AbortTransaction(ctx)
		return fmt.Errorf("failed to load menu items for cascade: %w", err)
	}

	if err := s.priceRepo.DeleteByMenuItems(sessCtx, itemIDs); err != nil {
		session.AbortTransaction(ctx)
		return err
	}
	if err := s.menuItemRepo.DeleteByIDs(sessCtx, itemIDs); err != nil {
		session.AbortTransaction(ctx)
		return err
	}
	if err := s.sectionRepo.DeleteByCategory(sessCtx, id); err != nil {
		session.AbortTransaction(ctx)
		return err
	}
	if err := s.categoryRepo.Delete(sessCtx, id); err != nil {
		session.AbortTransaction(ctx)
		return err
	}

	if err := session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, domain.EventDeleted, domain.EntityCategory, id.Hex(), actorID, "")
	s.logger.Infow("category deleted", "category_id", id.Hex(), "cascaded_items", len(itemIDs))

	return nil
}

// SectionSummaries returns the names of a category's sections for the
// admin list view.
func (s *CategoryService) SectionSummaries(ctx context.Context, categoryID primitive.ObjectID) ([]string, error) {
	sections, _, err := s.sectionRepo.List(ctx, repo.SectionFilter{
		CategoryID: &categoryID,
		Page:       1,
		PerPage:    100,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sections))
	for _, section := range sections {
		names = append(names, section.Name)
	}

	return names, nil
}
