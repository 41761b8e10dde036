package entity

import (
	"time"

	"github.com/google/uuid"
)

// Application is a personal financial record owned by exactly one user.
// OwnerID is set at creation time and never changes; a caller may only see or
// mutate applications whose OwnerID matches their own identity.
type Application struct {
	ID          uuid.UUID // The unique identifier for this record.
	OwnerID     uuid.UUID // Links this record to the User that created it.
	Name        string    // Free-form label for the record.
	Income      float64
	Expenses    float64
	Assets      float64
	Liabilities float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
