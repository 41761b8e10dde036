package impl

import (
	"context"
	"log/slog"

	deliverycontext "finledger/internal/delivery/context"
	"finledger/internal/domain/entity"
	domainerrors "finledger/internal/domain/errors"
	"finledger/internal/domain/repository"
	"finledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// applicationService implements the ApplicationUsecase interface. Every
// operation is scoped to the caller: the ownership predicate lives in the
// repository, and this layer only translates its not-found signal.
type applicationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ApplicationServiceParams holds dependencies for applicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new application record. The owner is always the caller;
// whatever owner value a client may have supplied never reaches this layer.
func (srv *applicationService) Create(ctx context.Context, callerID uuid.UUID, input *usecase.ApplicationInput) (*entity.Application, error) {
	srv.log(ctx).Info("Creating application", slog.Any("ownerID", callerID))

	app := &entity.Application{
		OwnerID:     callerID,
		Name:        input.Name,
		Income:      input.Income,
		Expenses:    input.Expenses,
		Assets:      input.Assets,
		Liabilities: input.Liabilities,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ApplicationRepo().Create(ctx, app); err != nil {
			return errors.Wrap(err, "failed to create application")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create application", slog.Any("ownerID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute application creation transaction")
	}

	return app, nil
}

// List returns the caller's applications and nothing else.
func (srv *applicationService) List(ctx context.Context, callerID uuid.UUID) ([]*entity.Application, error) {
	var apps []*entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.ApplicationRepo().FindByOwner(ctx, callerID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to list applications")
		}
		apps = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list applications", slog.Any("ownerID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute application listing transaction")
	}

	return apps, nil
}

// Get retrieves a single application owned by the caller.
func (srv *applicationService) Get(ctx context.Context, callerID, id uuid.UUID) (*entity.Application, error) {
	var app *entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.ApplicationRepo().FindByIDAndOwner(ctx, id, callerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrApplicationNotFound) {
				return errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found")
			}

			return errors.Wrap(findErr, "failed to find application")
		}
		app = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get application")
	}

	return app, nil
}

// Update modifies an application owned by the caller and returns the result.
func (srv *applicationService) Update(ctx context.Context, callerID, id uuid.UUID, input *usecase.ApplicationInput) (*entity.Application, error) {
	srv.log(ctx).Info("Updating application", slog.Any("ownerID", callerID), slog.Any("applicationID", id))

	var app *entity.Application

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.ApplicationRepo()

		found, findErr := appRepo.FindByIDAndOwner(ctx, id, callerID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrApplicationNotFound) {
				return errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found")
			}

			return errors.Wrap(findErr, "failed to find application")
		}

		found.Name = input.Name
		found.Income = input.Income
		found.Expenses = input.Expenses
		found.Assets = input.Assets
		found.Liabilities = input.Liabilities

		if updateErr := appRepo.Update(ctx, found); updateErr != nil {
			if errors.Is(updateErr, repository.ErrApplicationNotFound) {
				return errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found")
			}

			return errors.Wrap(updateErr, "failed to update application")
		}
		app = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update application", slog.Any("ownerID", callerID), slog.Any("applicationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute application update transaction")
	}

	return app, nil
}

// Delete removes an application owned by the caller.
func (srv *applicationService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting application", slog.Any("ownerID", callerID), slog.Any("applicationID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if deleteErr := repoFactory.ApplicationRepo().DeleteByIDAndOwner(ctx, id, callerID); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrApplicationNotFound) {
				return errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found")
			}

			return errors.Wrap(deleteErr, "failed to delete application")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete application", slog.Any("ownerID", callerID), slog.Any("applicationID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute application deletion transaction")
	}

	return nil
}
