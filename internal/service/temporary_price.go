package service

import (
	"context"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/pricing"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TemporaryPriceService struct {
	priceRepo    repo.TemporaryPriceRepository
	menuItemRepo repo.MenuItemRepository
	logger       *zap.SugaredLogger
	changePublisher
}

func NewTemporaryPriceService(
	priceRepo repo.TemporaryPriceRepository,
	menuItemRepo repo.MenuItemRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *TemporaryPriceService {
	return &TemporaryPriceService{
		priceRepo:       priceRepo,
		menuItemRepo:    menuItemRepo,
		logger:          logger,
		changePublisher: changePublisher{broker: broker, logger: logger},
	}
}

// TemporaryPriceWithStatus annotates a rule with its temporal state at
// the instant the request was served. The status is never stored; rules
// are classified lazily on every read.
type TemporaryPriceWithStatus struct {
	domain.TemporaryPrice
	Status pricing.Status `json:"status"`
}

type CreateTemporaryPriceInput struct {
	RuleName string
	Price    int64
	StartAt  time.Time
	EndAt    time.Time
	Enabled  *bool
}

type UpdateTemporaryPriceInput struct {
	RuleName *string
	Price    *int64
	StartAt  *time.Time
	EndAt    *time.Time
	Enabled  *bool
}

func withStatus(price *domain.TemporaryPrice, now time.Time) TemporaryPriceWithStatus {
	return TemporaryPriceWithStatus{
		TemporaryPrice: *price,
		Status:         pricing.RuleStatus(price.StartAt, price.EndAt, now),
	}
}

func (s *TemporaryPriceService) List(ctx context.Context, menuItemID primitive.ObjectID) ([]TemporaryPriceWithStatus, error) {
	if _, err := s.menuItemRepo.GetByID(ctx, menuItemID); err != nil {
		return nil, err
	}

	prices, err := s.priceRepo.ListByMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	annotated := make([]TemporaryPriceWithStatus, 0, len(prices))
	for i := range prices {
		annotated = append(annotated, withStatus(&prices[i], now))
	}

	return annotated, nil
}

func (s *TemporaryPriceService) Create(ctx context.Context, menuItemID primitive.ObjectID, in CreateTemporaryPriceInput, actorID string) (*TemporaryPriceWithStatus, error) {
	if _, err := s.menuItemRepo.GetByID(ctx, menuItemID); err != nil {
		return nil, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	price := &domain.TemporaryPrice{
		MenuItemID: menuItemID,
		RuleName:   in.RuleName,
		Price:      in.Price,
		StartAt:    in.StartAt,
		EndAt:      in.EndAt,
		Enabled:    enabled,
	}

	if err := s.priceRepo.Create(ctx, price); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventCreated, domain.EntityTemporaryPrice, price.ID.Hex(), actorID, price.RuleName)
	s.logger.Infow("temporary price created", "temporary_price_id", price.ID.Hex(), "menu_item_id", menuItemID.Hex())

	annotated := withStatus(price, time.Now())
	return &annotated, nil
}

func (s *TemporaryPriceService) Update(ctx context.Context, menuItemID, id primitive.ObjectID, in UpdateTemporaryPriceInput, actorID string) (*TemporaryPriceWithStatus, error) {
	price, err := s.priceRepo.GetByID(ctx, menuItemID, id)
	if err != nil {
		return nil, err
	}

	if in.RuleName != nil {
		price.RuleName = *in.RuleName
	}
	if in.Price != nil {
		price.Price = *in.Price
	}
	if in.StartAt != nil {
		price.StartAt = *in.StartAt
	}
	if in.EndAt != nil {
		price.EndAt = *in.EndAt
	}
	if in.Enabled != nil {
		price.Enabled = *in.Enabled
	}

	if err := s.priceRepo.Update(ctx, price); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventUpdated, domain.EntityTemporaryPrice, price.ID.Hex(), actorID, price.RuleName)

	annotated := withStatus(price, time.Now())
	return &annotated, nil
}

func (s *TemporaryPriceService) SetEnabled(ctx context.Context, menuItemID, id primitive.ObjectID, enabled bool, actorID string) error {
	if err := s.priceRepo.SetEnabled(ctx, menuItemID, id, enabled); err != nil {
		return err
	}

	s.publish(ctx, domain.EventEnabledChanged, domain.EntityTemporaryPrice, id.Hex(), actorID, "")

	return nil
}

// Duplicate clones a rule as a disabled near-copy so an admin can tweak
// dates or price before switching it on.
func (s *TemporaryPriceService) Duplicate(ctx context.Context, menuItemID, id primitive.ObjectID, actorID string) (*TemporaryPriceWithStatus, error) {
	original, err := s.priceRepo.GetByID(ctx, menuItemID, id)
	if err != nil {
		return nil, err
	}

	copy := &domain.TemporaryPrice{
		MenuItemID: original.MenuItemID,
		RuleName:   original.RuleName + " (Copy)",
		Price:      original.Price,
		StartAt:    original.StartAt,
		EndAt:      original.EndAt,
		Enabled:    false,
	}

	if err := s.priceRepo.Create(ctx, copy); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventCreated, domain.EntityTemporaryPrice, copy.ID.Hex(), actorID, copy.RuleName)

	annotated := withStatus(copy, time.Now())
	return &annotated, nil
}

func (s *TemporaryPriceService) Delete(ctx context.Context, menuItemID, id primitive.ObjectID, actorID string) error {
	if err := s.priceRepo.Delete(ctx, menuItemID, id); err != nil {
		return err
	}

	s.publish(ctx, domain.EventDeleted, domain.EntityTemporaryPrice, id.Hex(), actorID, "")

	return nil
}
