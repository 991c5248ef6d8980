package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository on top of GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its line items. The insert runs in a nested
// transaction, which GORM maps to a savepoint when the repository is bound to
// an open transaction, so a number collision leaves the outer transaction
// usable for another attempt.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return order.ErrOrderAlreadyPersisted
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrDuplicateOrderNumber
	}
	if err != nil {
		return fmt.Errorf("insert order %s: %w", aggregate.Number(), err)
	}

	return aggregate.SetID(dto.ID)
}

func (r *GormOrderRepository) Get(ctx context.Context, ref kernel.OrderRef) (*order.Order, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
	if ref.Kind() == kernel.OrderRefByID {
		query = query.Where("id = ?", ref.ID())
	} else {
		query = query.Where("number = ?", ref.Number().String())
	}

	var dto OrderDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ref.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes the new status with a compare-and-swap on expected.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID(), int(expected)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidTransitionErrorWithCause(
			fmt.Sprintf("move to %s", aggregate.Status()),
			expected.String(),
			fmt.Errorf("order %s was changed concurrently", aggregate.Number()),
		)
	}
	return nil
}

// AssignDeliveryPerson writes the delivery person unless someone else was
// assigned first or the order reached a terminal status meanwhile.
func (r *GormOrderRepository) AssignDeliveryPerson(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	deliveryPerson := aggregate.DeliveryPerson()
	if deliveryPerson == nil {
		return errs.NewValueIsRequiredError("delivery person")
	}

	terminal := make([]int, 0, 2)
	for _, s := range order.TerminalStatuses() {
		terminal = append(terminal, int(s))
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND delivery_person IS NULL AND status NOT IN ?", aggregate.ID(), terminal).
		Update("delivery_person", *deliveryPerson)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidTransitionErrorWithCause(
			"assign",
			aggregate.Status().String(),
			fmt.Errorf("order %s was assigned or closed concurrently", aggregate.Number()),
		)
	}
	return nil
}
