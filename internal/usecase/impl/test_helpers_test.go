package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"finledger/internal/domain/repository"
	mockRepo "finledger/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughExecute wires a MockTransactionManager so that Execute runs the
// given function against the provided factory and propagates its error, the
// way the real transaction manager does on commit/rollback.
func passthroughExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
