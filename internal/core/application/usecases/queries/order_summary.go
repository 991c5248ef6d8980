// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Every query answers with OrderSummary projections read straight from the
// database, never with the order aggregate itself.
package queries

import (
	"context"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is the read model returned to every caller. It carries what a
// customer, a kitchen or a courier needs to see and no internal identifiers
// beyond the order id itself.
type OrderSummary struct {
	ID              uint64
	Number          string
	Status          string
	TotalPrice      decimal.Decimal
	RestaurantName  string
	CustomerName    string
	DeliveryAddress string
	DeliveryPerson  *string
	LineItems       []LineItemSummary
}

type LineItemSummary struct {
	MenuItemID uint64
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
}

// summaryRow is an OrderSummary plus the columns used for visibility checks.
type summaryRow struct {
	OrderSummary
	customer     string
	restaurantID uint64
	status       order.Status
}

func (r summaryRow) assignedTo(identity string) bool {
	return r.DeliveryPerson != nil && *r.DeliveryPerson == identity
}

const summarySelect = `
	SELECT
		o.id,
		o.number,
		o.status,
		o.total_price,
		o.customer,
		o.restaurant_id,
		o.delivery_person,
		COALESCE(r.name, ''),
		COALESCE(u.full_name, o.customer),
		COALESCE(a.street, ''),
		COALESCE(a.postal_code, ''),
		COALESCE(a.city, '')
	FROM orders o
	LEFT JOIN restaurants r ON r.id = o.restaurant_id
	LEFT JOIN users u ON u.username = o.customer
	LEFT JOIN addresses a ON a.id = o.address_id
`

// summaryReader loads summaries for an arbitrary filter on the orders table
// (aliased o). Line items are fetched with one extra query for the whole page.
type summaryReader struct {
	db *gorm.DB
}

func (s summaryReader) find(ctx context.Context, filter string, args ...any) ([]summaryRow, error) {
	rows, err := s.db.WithContext(ctx).Raw(summarySelect+filter, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]summaryRow, 0)
	for rows.Next() {
		var row summaryRow
		var status int
		var street, postalCode, city string

		err = rows.Scan(
			&row.ID,
			&row.Number,
			&status,
			&row.TotalPrice,
			&row.customer,
			&row.restaurantID,
			&row.DeliveryPerson,
			&row.RestaurantName,
			&row.CustomerName,
			&street,
			&postalCode,
			&city,
		)
		if err != nil {
			return nil, err
		}

		row.status = order.Status(status)
		row.Status = row.status.String()
		row.DeliveryAddress = formatAddress(street, postalCode, city)
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = s.attachLineItems(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s summaryReader) attachLineItems(ctx context.Context, summaries []summaryRow) error {
	if len(summaries) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(summaries))
	index := make(map[uint64]int, len(summaries))
	for i, summary := range summaries {
		ids = append(ids, summary.ID)
		index[summary.ID] = i
		summaries[i].LineItems = make([]LineItemSummary, 0)
	}

	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price,
			quantity
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uint64
		var item LineItemSummary
		if err = rows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return err
		}
		i, ok := index[orderID]
		if !ok {
			return fmt.Errorf("line item for unexpected order %d", orderID)
		}
		summaries[i].LineItems = append(summaries[i].LineItems, item)
	}
	return rows.Err()
}

func summariesOf(rows []summaryRow) []OrderSummary {
	result := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.OrderSummary)
	}
	return result
}

func formatAddress(street, postalCode, city string) string {
	locality := strings.TrimSpace(postalCode + " " + city)
	switch {
	case street == "":
		return locality
	case locality == "":
		return street
	default:
		return street + ", " + locality
	}
}
