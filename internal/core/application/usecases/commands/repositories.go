// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	RestaurantCatalogFactory interface {
		RestaurantCatalog() ports.RestaurantCatalog
	}

	UserDirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	OrderEventOutboxFactory interface {
		OrderEventOutbox() ports.OrderEventOutbox
	}

	// InventoryUoW manages transactions for staff stock updates.
	InventoryUoW interface {
		TxManager
		InventoryLedgerFactory
		UserDirectoryFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OutboxUoW manages transactions of the outbox relay.
	OutboxUoW interface {
		TxManager
		OrderEventOutboxFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW manages transactions that touch orders, stock and the outbox together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.InventoryLedger().Reserve(ctx, itemID, 2)
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.OrderEventOutbox().Add(ctx, event)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		InventoryLedgerFactory
		RestaurantCatalogFactory
		UserDirectoryFactory
		OrderEventOutboxFactory
	}

	// UoWFactory creates new unit of work instances for order operations.
	UoWFactory interface {
		Create() UoW
	}
)
