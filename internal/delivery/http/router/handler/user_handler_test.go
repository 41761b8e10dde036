package handler

import (
	"net/http"
	"testing"

	"finledger/internal/domain/entity"
	mockUc "finledger/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListUsers_Success(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	users := []*entity.User{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$alice"},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", PasswordHash: "$2a$10$bob"},
	}

	uc.EXPECT().ListUsers(mock.Anything).Return(users, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	err := h.ListUsers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.Contains(t, rec.Body.String(), "bob@example.com")
	// The directory never exposes credentials.
	assert.NotContains(t, rec.Body.String(), "$2a$10$")
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	err := h.ListUsers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_ListUsers_Error(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	uc.EXPECT().ListUsers(mock.Anything).Return(nil, errors.New("connection reset"))

	c, _ := newTestContext(t, http.MethodGet, "/users", "")

	err := h.ListUsers(c)

	require.Error(t, err)
}
