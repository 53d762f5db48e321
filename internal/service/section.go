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

type SectionService struct {
	sectionRepo  repo.SectionRepository
	categoryRepo repo.CategoryRepository
	menuItemRepo repo.MenuItemRepository
	priceRepo    repo.TemporaryPriceRepository
	storage      *mongo.Storage
	logger       *zap.SugaredLogger
	changePublisher
}

func NewSectionService(
	sectionRepo repo.SectionRepository,
	categoryRepo repo.CategoryRepository,
	menuItemRepo repo.MenuItemRepository,
	priceRepo repo.TemporaryPriceRepository,
	broker queue.Broker,
	storage *mongo.Storage,
	logger *zap.SugaredLogger,
) *SectionService {
	return &SectionService{
		sectionRepo:     sectionRepo,
		categoryRepo:    categoryRepo,
		menuItemRepo:    menuItemRepo,
		priceRepo:       priceRepo,
		storage:         storage,
		logger:          logger,
		changePublisher: changePublisher{broker: broker, logger: logger},
	}
}

type CreateSectionInput struct {
	CategoryID  primitive.ObjectID
	Name        string
	Description string
	ImageURL    string
	Order       *int
	Enabled     *bool
}

type UpdateSectionInput struct {
	CategoryID  *primitive.ObjectID
	Name        *string
	Description *string
	ImageURL    *string
	Order       *int
	Enabled     *bool
}

func (s *SectionService) List(ctx context.Context, filter repo.SectionFilter) ([]domain.Section, int64, error) {
	return s.sectionRepo.List(ctx, filter)
}

func (s *SectionService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// Category resolves a section's parent for the slim relation embedded in
// admin responses.
func (s *SectionService) Category(ctx context.Context, categoryID primitive.ObjectID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, categoryID)
}

func (s *SectionService) Create(ctx context.Context, in CreateSectionInput, actorID string) (*domain.Section, error) {
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	// slug uniqueness is scoped to the parent category
	sectionSlug, err := slug.EnsureUnique(ctx, in.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.sectionRepo.SlugExists(ctx, in.CategoryID, candidate, primitive.NilObjectID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate section slug: %w", err)
	}

	var order int
	if in.Order != nil {
		order = *in.Order
	} else {
		orders, err := s.sectionRepo.Orders(ctx, in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve section order: %w", err)
		}
		order = ordering.Next(orders)
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	section := &domain.Section{
		CategoryID:  in.CategoryID,
		Name:        slug.TitleCase(in.Name),
		Slug:        sectionSlug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Order:       order,
		Enabled:     enabled,
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventCreated, domain.EntitySection, section.ID.Hex(), actorID, section.Name)
	s.logger.Infow("section created", "section_id", section.ID.Hex(), "category_id", in.CategoryID.Hex(), "slug", section.Slug)

	return section, nil
}

func (s *SectionService) Update(ctx context.Context, id primitive.ObjectID, in UpdateSectionInput, actorID string) (*domain.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		section.CategoryID = *in.CategoryID
	}

	if in.Name != nil {
		newSlug, err := slug.EnsureUnique(ctx, *in.Name, func(ctx context.Context, candidate string) (bool, error) {
			return s.sectionRepo.SlugExists(ctx, section.CategoryID, candidate, section.ID)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate section slug: %w", err)
		}
		section.Name = slug.TitleCase(*in.Name)
		section.Slug = newSlug
	}
	if in.Description != nil {
		section.Description = *in.Description
	}
	if in.ImageURL != nil {
		section.ImageURL = *in.ImageURL
	}
	if in.Order != nil {
		section.Order = *in.Order
	}
	if in.Enabled != nil {
		section.Enabled = *in.Enabled
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventUpdated, domain.EntitySection, section.ID.Hex(), actorID, section.Name)

	return section, nil
}

// Reorder renumbers every section of one category in a single
// transaction. The requested IDs must match the category's full sibling
// set exactly.
func (s *SectionService) Reorder(ctx context.Context, categoryID primitive.ObjectID, ids []primitive.ObjectID, actorID string) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}

	current, err := s.sectionRepo.IDsByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load section IDs: %w", err)
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

	if err := s.sectionRepo.UpdateOrders(sessCtx, orders); err != nil {
		session.AbortTransaction(ctx)
		return fmt.Errorf("failed to apply section reorder: %w", err)
	}

	if err := session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, domain.EventReordered, domain.EntitySection, "", actorID, fmt.Sprintf("%d sections in category %s", len(ids), categoryID.Hex()))
	s.logger.Infow("sections reordered", "category_id", categoryID.Hex(), "count", len(ids))

	return nil
}

func (s *SectionService) SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool, actorID string) error {
	if err := s.sectionRepo.SetEnabled(ctx, id, enabled); err != nil {
		return err
	}

	s.publish(ctx, domain.EventEnabledChanged, domain.EntitySection, id.Hex(), actorID, fmt.Sprintf("enabled=%t", enabled))

	return nil
}

// Delete removes a section and its menu items plus their temporary
// prices in one transaction.
func (s *SectionService) Delete(ctx context.Context, id primitive.ObjectID, actorID string) error {
	if _, err := s.sectionRepo.GetByID(ctx, id); err != nil {
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

	itemIDs, err := s.menuItemRepo.IDsBySection(sessCtx, id)
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
	if err := s.sectionRepo.Delete(sessCtx, id); err != nil {
		session.AbortTransaction(ctx)
		return err
	}

	if err := session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, domain.EventDeleted, domain.EntitySection, id.Hex(), actorID, "")
	s.logger.Infow("section deleted", "section_id", id.Hex(), "cascaded_items", len(itemIDs))

	return nil
}
