// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence and, for lifecycle transitions,
// notification submission.
package commands

import (
	"context"

	"storefront/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to the notification outbox within a transaction.
	OutboxRepoFactory interface {
		NotificationOutboxRepository() ports.NotificationOutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that never notify: creation and line edits.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotifyingUoW manages transactions for lifecycle transitions, which
	// park a notification job in the outbox atomically with the status change.
	NotifyingUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// NotifyingUoWFactory creates new notifying unit of work instances.
	NotifyingUoWFactory interface {
		Create() NotifyingUoW
	}
)
