package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

func requireRole(actor kernel.Actor, role kernel.Role, action string) error {
	if !actor.Is(role) {
		return errs.NewUnauthorizedError(action, actor.Identity())
	}
	return nil
}

// staffRestaurant returns the restaurant the actor works for according to the
// user directory. The role in the token alone is not enough.
func staffRestaurant(ctx context.Context, db *gorm.DB, actor kernel.Actor, action string) (uint64, error) {
	if err := requireRole(actor, kernel.RoleRestaurantEmployee, action); err != nil {
		return 0, err
	}

	var restaurantID *uint64
	err := db.WithContext(ctx).Raw(`
		SELECT restaurant_id
		FROM users
		WHERE username = ? AND role = ?
	`, actor.Identity(), kernel.RoleRestaurantEmployee.String()).Row().Scan(&restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.NewUnauthorizedError(action, actor.Identity())
	}
	if err != nil {
		return 0, err
	}
	if restaurantID == nil || *restaurantID == 0 {
		return 0, errs.NewUnauthorizedError(action, actor.Identity())
	}
	return *restaurantID, nil
}

func refFilter(ref kernel.OrderRef) (string, any) {
	if ref.Kind() == kernel.OrderRefByID {
		return "WHERE o.id = ?", ref.ID()
	}
	return "WHERE o.number = ?", ref.Number().String()
}

func findOne(ctx context.Context, reader summaryReader, ref kernel.OrderRef) (summaryRow, error) {
	filter, arg := refFilter(ref)
	rows, err := reader.find(ctx, filter, arg)
	if err != nil {
		return summaryRow{}, err
	}
	if len(rows) == 0 {
		return summaryRow{}, errs.NewObjectNotFoundError("order", ref.String())
	}
	return rows[0], nil
}
