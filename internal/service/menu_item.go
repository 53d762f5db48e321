package service

import (
	"context"
	"fmt"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/slug"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/store/mongo"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MenuItemService struct {
	menuItemRepo repo.MenuItemRepository
	sectionRepo  repo.SectionRepository
	categoryRepo repo.CategoryRepository
	priceRepo    repo.TemporaryPriceRepository
	storage      *mongo.Storage
	logger       *zap.SugaredLogger
	changePublisher
}

func NewMenuItemService(
	menuItemRepo repo.MenuItemRepository,
	sectionRepo repo.SectionRepository,
	categoryRepo repo.CategoryRepository,
	priceRepo repo.TemporaryPriceRepository,
	broker queue.Broker,
	storage *mongo.Storage,
	logger *zap.SugaredLogger,
) *MenuItemService {
	return &MenuItemService{
		menuItemRepo:    menuItemRepo,
		sectionRepo:     sectionRepo,
		categoryRepo:    categoryRepo,
		priceRepo:       priceRepo,
		storage:         storage,
		logger:          logger,
		changePublisher: changePublisher{broker: broker, logger: logger},
	}
}

type CreateMenuItemInput struct {
	CategoryID  primitive.ObjectID
	SectionID   primitive.ObjectID
	Name        string
	Description string
	BasePrice   int64
	ImageURL    string
	Available   *bool
	Enabled     *bool
}

type UpdateMenuItemInput struct {
	CategoryID  *primitive.ObjectID
	SectionID   *primitive.ObjectID
	Name        *string
	Description *string
	BasePrice   *int64
	ImageURL    *string
	Available   *bool
	Enabled     *bool
}

func (s *MenuItemService) List(ctx context.Context, filter repo.MenuItemFilter) ([]domain.MenuItem, int64, error) {
	return s.menuItemRepo.List(ctx, filter)
}

func (s *MenuItemService) Get(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	return s.menuItemRepo.GetByID(ctx, id)
}

func (s *MenuItemService) Category(ctx context.Context, categoryID primitive.ObjectID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *MenuItemService) Section(ctx context.Context, sectionID primitive.ObjectID) (*domain.Section, error) {
	return s.sectionRepo.GetByID(ctx, sectionID)
}

// checkParents verifies the parent/child invariant: the section must
// exist and belong to the stated category.
func (s *MenuItemService) checkParents(ctx context.Context, categoryID, sectionID primitive.ObjectID) error {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return err
	}
	if section.CategoryID != categoryID {
		return ErrSectionMismatch
	}
	return nil
}

func (s *MenuItemService) Create(ctx context.Context, in CreateMenuItemInput, actorID string) (*domain.MenuItem, error) {
	if err := s.checkParents(ctx, in.CategoryID, in.SectionID); err != nil {
		return nil, err
	}

	itemSlug, err := slug.EnsureUnique(ctx, in.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.menuItemRepo.SlugExists(ctx, in.CategoryID, candidate, primitive.NilObjectID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate menu item slug: %w", err)
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	item := &domain.MenuItem{
		CategoryID:  in.CategoryID,
		SectionID:   in.SectionID,
		Name:        slug.TitleCase(in.Name),
		Slug:        itemSlug,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		ImageURL:    in.ImageURL,
		Available:   available,
		Enabled:     enabled,
	}

	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventCreated, domain.EntityMenuItem, item.ID.Hex(), actorID, item.Name)
	s.logger.Infow("menu item created", "menu_item_id", item.ID.Hex(), "section_id", in.SectionID.Hex(), "slug", item.Slug)

	return item, nil
}

func (s *MenuItemService) Update(ctx context.Context, id primitive.ObjectID, in UpdateMenuItemInput, actorID string) (*domain.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil || in.SectionID != nil {
		categoryID := item.CategoryID
		if in.CategoryID != nil {
			categoryID = *in.CategoryID
		}
		sectionID := item.SectionID
		if in.SectionID != nil {
			sectionID = *in.SectionID
		}
		if err := s.checkParents(ctx, categoryID, sectionID); err != nil {
			return nil, err
		}
		item.CategoryID = categoryID
		item.SectionID = sectionID
	}

	if in.Name != nil {
		newSlug, err := slug.EnsureUnique(ctx, *in.Name, func(ctx context.Context, candidate string) (bool, error) {
			return s.menuItemRepo.SlugExists(ctx, item.CategoryID, candidate, item.ID)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate menu item slug: %w", err)
		}
		item.Name = slug.TitleCase(*in.Name)
		item.Slug = newSlug
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.BasePrice != nil {
		item.BasePrice = *in.BasePrice
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.Enabled != nil {
		item.Enabled = *in.Enabled
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventUpdated, domain.EntityMenuItem, item.ID.Hex(), actorID, item.Name)

	return item, nil
}

func (s *MenuItemService) SetAvailable(ctx context.Context, id primitive.ObjectID, available bool, actorID string) error {
	if err := s.menuItemRepo.SetAvailable(ctx, id, available); err != nil {
		return err
	}

	s.publish(ctx, domain.EventAvailabilityChanged, domain.EntityMenuItem, id.Hex(), actorID, fmt.Sprintf("available=%t", available))

	return nil
}

func (s *MenuItemService) SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool, actorID string) error {
	if err := s.menuItemRepo.SetEnabled(ctx, id, enabled); err != nil {
		return err
	}

	s.publish(ctx, domain.EventEnabledChanged, domain.EntityMenuItem, id.Hex(), actorID, fmt.Sprintf("enabled=%t", enabled))

	return nil
}

// Delete removes a menu item and its temporary prices in one
// transaction.
func (s *MenuItemService) Delete(ctx context.Context, id primitive.ObjectID, actorID string) error {
	if _, err := s.menuItemRepo.GetByID(ctx, id); err != nil {
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

	if err := s.priceRepo.DeleteByMenuItems(sessCtx, []primitive.ObjectID{id}); err != nil {
		session.AbortTransaction(ctx)
		return err
	}
	if err := s.menuItemRepo.Delete(sessCtx, id); err != nil {
		session.AbortTransaction(ctx)
		return err
	}

	if err := session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, domain.EventDeleted, domain.EntityMenuItem, id.Hex(), actorID, "")
	s.logger.Infow("menu item deleted", "menu_item_id", id.Hex())

	return nil
}
