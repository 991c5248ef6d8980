package commands

import (
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
)

type orderEventPayload struct {
	Number         string  `json:"number"`
	Status         string  `json:"status"`
	PreviousStatus string  `json:"previous_status,omitempty"`
	Customer       string  `json:"customer"`
	RestaurantID   uint64  `json:"restaurant_id"`
	DeliveryPerson *string `json:"delivery_person,omitempty"`
	TotalPrice     string  `json:"total_price"`
}

// newOrderEvent snapshots o for the outbox. previous is order.Unknown for
// events that do not change the status.
func newOrderEvent(eventType string, o *order.Order, previous order.Status) (ports.OrderEvent, error) {
	payload := orderEventPayload{
		Number:         o.Number().String(),
		Status:         o.Status().String(),
		Customer:       o.Customer(),
		RestaurantID:   o.RestaurantID(),
		DeliveryPerson: o.DeliveryPerson(),
		TotalPrice:     o.TotalPrice().StringFixed(2),
	}
	if previous != order.Unknown {
		payload.PreviousStatus = previous.String()
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ports.OrderEvent{}, err
	}

	return ports.OrderEvent{
		ID:          uuid.New(),
		OrderNumber: o.Number().String(),
		Type:        eventType,
		Payload:     raw,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
