package impl

import (
	"context"
	"testing"

	"finledger/internal/domain/entity"
	domainerrors "finledger/internal/domain/errors"
	"finledger/internal/domain/repository"
	mockRepo "finledger/internal/mocks/repository"
	"finledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// applicationServiceFixtures holds all test dependencies for application service tests.
type applicationServiceFixtures struct {
	service   usecase.ApplicationUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	appRepo   *mockRepo.MockApplicationRepository
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	appRepo := mockRepo.NewMockApplicationRepository(t)

	service := NewApplicationService(ApplicationServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return applicationServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		appRepo:   appRepo,
	}
}

func TestApplicationService_Create_OwnerIsCaller(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	input := &usecase.ApplicationInput{
		Name:        "Household 2026",
		Income:      5200.50,
		Expenses:    3100,
		Assets:      84000,
		Liabilities: 15500,
	}

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)

	createdID := uuid.New()
	fx.appRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Application")).
		Run(func(ctx context.Context, app *entity.Application) {
			app.ID = createdID
		}).
		Return(nil)

	passthroughExecute(t, fx.txManager, fx.factory)

	app, err := fx.service.Create(ctx, callerID, input)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, createdID, app.ID)
	assert.Equal(t, callerID, app.OwnerID)
	assert.Equal(t, input.Name, app.Name)
	assert.InDelta(t, input.Income, app.Income, 0.001)
}

func TestApplicationService_List_OnlyCallersRecords(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	owned := []*entity.Application{
		{ID: uuid.New(), OwnerID: callerID, Name: "A"},
		{ID: uuid.New(), OwnerID: callerID, Name: "B"},
	}

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().FindByOwner(ctx, callerID).Return(owned, nil)

	passthroughExecute(t, fx.txManager, fx.factory)

	apps, err := fx.service.List(ctx, callerID)

	require.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.Equal(t, owned, apps)
}

func TestApplicationService_List_Empty(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().FindByOwner(ctx, callerID).Return([]*entity.Application{}, nil)

	passthroughExecute(t, fx.txManager, fx.factory)

	apps, err := fx.service.List(ctx, callerID)

	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplicationService_Get_Success(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	appID := uuid.New()
	app := &entity.Application{ID: appID, OwnerID: callerID, Name: "Mine"}

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().FindByIDAndOwner(ctx, appID, callerID).Return(app, nil)

	passthroughExecute(t, fx.txManager, fx.factory)

	got, err := fx.service.Get(ctx, callerID, appID)

	require.NoError(t, err)
	assert.Equal(t, app, got)
}

func TestApplicationService_Get_ForeignRecordNotFound(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	appID := uuid.New()

	// The repository scopes lookups by owner, so a record belonging to someone
	// else is indistinguishable from one that does not exist.
	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().FindByIDAndOwner(ctx, appID, callerID).Return(nil, repository.ErrApplicationNotFound)

	passthroughExecute(t, fx.txManager, fx.factory)

	got, err := fx.service.Get(ctx, callerID, appID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
}

func TestApplicationService_Update_Success(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	appID := uuid.New()
	existing := &entity.Application{
		ID:      appID,
		OwnerID: callerID,
		Name:    "Old name",
		Income:  100,
	}
	input := &usecase.ApplicationInput{
		Name:        "New name",
		Income:      200,
		Expenses:    50,
		Assets:      1000,
		Liabilities: 10,
	}

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().FindByIDAndOwner(ctx, appID, callerID).Return(existing, nil)
	fx.appRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Application")).
		Return(nil)

	passthroughExecute(t, fx.txManager, fx.factory)

	updated, err := fx.service.Update(ctx, callerID, appID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, appID, updated.ID)
	assert.Equal(t, callerID, updated.OwnerID)
	assert.Equal(t, "New name", updated.Name)
	assert.InDelta(t, 200, updated.Income, 0.001)
	assert.InDelta(t, 50, updated.Expenses, 0.001)
}

func TestApplicationService_Update_NotFound(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	appID := uuid.New()
	input := &usecase.ApplicationInput{Name: "New name"}

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().FindByIDAndOwner(ctx, appID, callerID).Return(nil, repository.ErrApplicationNotFound)

	passthroughExecute(t, fx.txManager, fx.factory)

	updated, err := fx.service.Update(ctx, callerID, appID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
}

func TestApplicationService_Delete_Success(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	appID := uuid.New()

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().DeleteByIDAndOwner(ctx, appID, callerID).Return(nil)

	passthroughExecute(t, fx.txManager, fx.factory)

	err := fx.service.Delete(ctx, callerID, appID)

	require.NoError(t, err)
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	fx := createTestApplicationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	appID := uuid.New()

	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo)
	fx.appRepo.EXPECT().DeleteByIDAndOwner(ctx, appID, callerID).Return(repository.ErrApplicationNotFound)

	passthroughExecute(t, fx.txManager, fx.factory)

	err := fx.service.Delete(ctx, callerID, appID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
}
