package impl

import (
	"context"
	"log/slog"

	"finledger/internal/domain/entity"
	"finledger/internal/domain/repository"
	"finledger/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListUsers returns every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.UserRepo().FindAll(ctx)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user listing transaction")
	}

	return users, nil
}
