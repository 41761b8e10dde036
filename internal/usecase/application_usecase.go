package usecase

import (
	"context"

	"finledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplicationInput carries the writable fields of an application record.
// The owner is never part of the input: it always comes from the resolved
// caller identity, so a client-supplied owner value cannot take effect.
type ApplicationInput struct {
	Name        string  `json:"name" validate:"required"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
}

// ApplicationUsecase defines caller-scoped operations on application records.
// Every operation takes the caller's identity and applies the ownership gate:
// records of other owners are reported as not found, never as forbidden.
type ApplicationUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, input *ApplicationInput) (*entity.Application, error)
	List(ctx context.Context, callerID uuid.UUID) ([]*entity.Application, error)
	Get(ctx context.Context, callerID, id uuid.UUID) (*entity.Application, error)
	Update(ctx context.Context, callerID, id uuid.UUID, input *ApplicationInput) (*entity.Application, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}
