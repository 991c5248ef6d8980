package http

import (
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/menu"
)

type cartItemRequest struct {
	ItemID   uint64 `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type submitOrderRequest struct {
	Items []cartItemRequest `json:"items"`
}

type assignOrderRequest struct {
	DeliveryPerson string `json:"delivery_person"`
}

type updateInventoryRequest struct {
	Inventory int   `json:"inventory"`
	Available *bool `json:"available"`
}

type lineItemResponse struct {
	MenuItemID uint64 `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

// OrderSummaryResponse is the wire form of queries.OrderSummary. Amounts are
// strings with two decimals so clients never round through floats.
type OrderSummaryResponse struct {
	Number          string             `json:"number"`
	Status          string             `json:"status"`
	TotalPrice      string             `json:"total_price"`
	RestaurantName  string             `json:"restaurant_name"`
	CustomerName    string             `json:"customer_name"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryPerson  *string            `json:"delivery_person,omitempty"`
	LineItems       []lineItemResponse `json:"line_items"`
}

type MenuItemResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
	Available bool   `json:"available"`
}

func toOrderSummaryResponse(summary queries.OrderSummary) OrderSummaryResponse {
	lines := make([]lineItemResponse, 0, len(summary.LineItems))
	for _, line := range summary.LineItems {
		lines = append(lines, lineItemResponse{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice.StringFixed(2),
			Quantity:   line.Quantity,
		})
	}

	return OrderSummaryResponse{
		Number:          summary.Number,
		Status:          summary.Status,
		TotalPrice:      summary.TotalPrice.StringFixed(2),
		RestaurantName:  summary.RestaurantName,
		CustomerName:    summary.CustomerName,
		DeliveryAddress: summary.DeliveryAddress,
		DeliveryPerson:  summary.DeliveryPerson,
		LineItems:       lines,
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, toOrderSummaryResponse(summary))
	}
	return response
}

func toMenuItemResponse(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price().Amount().StringFixed(2),
		Inventory: item.Inventory(),
		Available: item.Available(),
	}
}
