package postgres

import (
	"context"
	"time"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	"skyvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderM.ToEntity(), nil
}

// FindByBuyer returns a buyer's orders, newest first.
func (repo *orderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Where("buyer_id = ?", buyerID)
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var models []model.OrderModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by buyer")
	}

	return toOrderEntities(models), nil
}

// FindByCreator returns the orders addressed to a creator, newest first.
func (repo *orderRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Where("creator_id = ?", creatorID)
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var models []model.OrderModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by creator")
	}

	return toOrderEntities(models), nil
}

// HasApproved reports whether the buyer holds an approved order covering
// the listing. The jsonb containment operator matches the snapshotted
// content ID list.
func (repo *orderRepository) HasApproved(ctx context.Context, buyerID, contentID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("buyer_id = ?", buyerID).
		Where("status = ?", entity.OrderStatusApproved.String()).
		Where("content_ids @> ?", `["`+contentID.String()+`"]`).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check approved orders")
	}

	return count > 0, nil
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := model.OrderModelFromEntity(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// UpdateStatusIfPending atomically moves a pending order to its final
// status. The WHERE clause on the current status makes concurrent
// decisions race-safe without a transaction.
func (repo *orderRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.OrderStatus, note string, decidedAt time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", id).
		Where("status = ?", entity.OrderStatusPending.String()).
		Updates(map[string]any{
			"status":        status.String(),
			"decision_note": note,
			"decided_at":    decidedAt,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotPending
	}

	return nil
}

func toOrderEntities(models []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, models[i].ToEntity())
	}

	return orders
}
