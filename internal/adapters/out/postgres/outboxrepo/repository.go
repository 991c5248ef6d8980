// Package outboxrepo stores order events until the relay job publishes them.
package outboxrepo

import (
	"context"
	"time"

	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber string     `gorm:"size:8;not null;index"`
	Type        string     `gorm:"size:64;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

type GormOrderEventOutbox struct {
	db *gorm.DB
}

func NewGormOrderEventOutbox(db *gorm.DB) *GormOrderEventOutbox {
	return &GormOrderEventOutbox{db: db}
}

func (o *GormOrderEventOutbox) Add(ctx context.Context, event ports.OrderEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	dto := OrderEventDTO{
		ID:          event.ID,
		OrderNumber: event.OrderNumber,
		Type:        event.Type,
		Payload:     event.Payload,
		CreatedAt:   event.CreatedAt,
	}
	return o.db.WithContext(ctx).Create(&dto).Error
}

func (o *GormOrderEventOutbox) ListUnpublished(ctx context.Context, limit int) ([]ports.OrderEvent, error) {
	var dtos []OrderEventDTO
	err := o.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.OrderEvent, 0, len(dtos))
	for _, dto := range dtos {
		events = append(events, ports.OrderEvent{
			ID:          dto.ID,
			OrderNumber: dto.OrderNumber,
			Type:        dto.Type,
			Payload:     dto.Payload,
			CreatedAt:   dto.CreatedAt,
		})
	}
	return events, nil
}

func (o *GormOrderEventOutbox) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return o.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id IN ?", ids).
		Update("published_at", time.Now().UTC()).Error
}
