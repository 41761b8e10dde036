package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. Use cases receive it from TransactionManager.Execute and never
// hold repositories across transaction boundaries.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ApplicationRepo() ApplicationRepository
}

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it,
	// and commits on nil error or rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
