package usecases

import "context"

// Transactor runs a function inside a database transaction. Repositories
// called with the inner context join the same transaction, so a failed
// audit-event write rolls back the row write that triggered it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
