package repository

import (
	"context"
	"errors"

	"finledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApplicationNotFound is returned both when a record does not exist and
// when it belongs to another owner. The two cases are deliberately
// indistinguishable so that record IDs leak nothing across accounts.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository defines owner-scoped persistence for application records.
// Every lookup and mutation takes the caller's identity: the predicate
// (id AND owner_id) is applied here, once, instead of being re-derived by
// each handler.
type ApplicationRepository interface {
	// Create persists a new application record.
	Create(ctx context.Context, app *entity.Application) error

	// FindByOwner retrieves all applications belonging to the given owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Application, error)

	// FindByIDAndOwner retrieves a single application scoped to its owner.
	// Returns ErrApplicationNotFound for foreign or absent records alike.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Application, error)

	// Update modifies an application scoped to its owner.
	Update(ctx context.Context, app *entity.Application) error

	// DeleteByIDAndOwner removes an application scoped to its owner.
	// Returns ErrApplicationNotFound for foreign or absent records alike.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
