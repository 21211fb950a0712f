// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"campuseats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles business transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a
	// transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CustomerRepoFactory provides access to the customer repository within
	// a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// KitchenStaffRepoFactory provides access to the kitchen roster within
	// a transaction.
	KitchenStaffRepoFactory interface {
		KitchenStaffRepository() ports.KitchenStaffRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment operations, which touch
	// the order and, for account payments, the paying customer.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UoW manages transactions across every aggregate type. Used for
	// commands that coordinate orders, customers, couriers and the kitchen
	// roster in one operation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		CustomerRepoFactory
		KitchenStaffRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
