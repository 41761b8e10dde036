package impl

import (
	"context"
	"testing"

	"finledger/internal/domain/entity"
	mockRepo "finledger/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListUsers_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(txManager, newDiscardLogger())

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "a@example.com", Name: "A"},
		{ID: uuid.New(), Email: "b@example.com", Name: "B"},
	}

	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	passthroughExecute(t, txManager, factory)

	got, err := service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_ListUsers_RepositoryError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(txManager, newDiscardLogger())

	ctx := context.Background()

	factory.EXPECT().UserRepo().Return(userRepo)
	userRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection reset"))

	passthroughExecute(t, txManager, factory)

	got, err := service.ListUsers(ctx)

	assert.Error(t, err)
	assert.Nil(t, got)
}
