package handler

import (
	"context"
	"net/http"
	"testing"

	"finledger/internal/domain/entity"
	domainerrors "finledger/internal/domain/errors"
	mockUc "finledger/internal/mocks/usecase"
	"finledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplicationHandler_Create_Success(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	app := &entity.Application{
		ID:      uuid.New(),
		OwnerID: callerID,
		Name:    "Household 2026",
		Income:  5200,
	}

	uc.EXPECT().
		Create(mock.Anything, callerID, mock.AnythingOfType("*usecase.ApplicationInput")).
		Return(app, nil)

	c, rec := newTestContext(t, http.MethodPost, "/applications",
		`{"name":"Household 2026","income":5200}`)
	c.Set("userID", callerID)

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), app.ID.String())
	assert.Contains(t, rec.Body.String(), callerID.String())
}

func TestApplicationHandler_Create_MissingName(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/applications",
		`{"income":5200}`)
	c.Set("userID", uuid.New())

	err := h.Create(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestApplicationHandler_List_Success(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	apps := []*entity.Application{
		{ID: uuid.New(), OwnerID: callerID, Name: "A"},
		{ID: uuid.New(), OwnerID: callerID, Name: "B"},
	}

	uc.EXPECT().List(mock.Anything, callerID).Return(apps, nil)

	c, rec := newTestContext(t, http.MethodGet, "/applications", "")
	c.Set("userID", callerID)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), apps[0].ID.String())
	assert.Contains(t, rec.Body.String(), apps[1].ID.String())
}

func TestApplicationHandler_Get_Success(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	appID := uuid.New()
	app := &entity.Application{ID: appID, OwnerID: callerID, Name: "Mine"}

	uc.EXPECT().Get(mock.Anything, callerID, appID).Return(app, nil)

	c, rec := newTestContext(t, http.MethodGet, "/applications/"+appID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(appID.String())
	c.Set("userID", callerID)

	err := h.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), appID.String())
}

func TestApplicationHandler_Get_MalformedID(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	c, rec := newTestContext(t, http.MethodGet, "/applications/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set("userID", uuid.New())

	err := h.Get(c)

	// A malformed ID is a client error, not a lookup miss.
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestApplicationHandler_Get_ForeignRecord(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	appID := uuid.New()

	uc.EXPECT().
		Get(mock.Anything, callerID, appID).
		Return(nil, errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found"))

	c, _ := newTestContext(t, http.MethodGet, "/applications/"+appID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(appID.String())
	c.Set("userID", callerID)

	err := h.Get(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
}

func TestApplicationHandler_Update_Success(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	appID := uuid.New()
	updated := &entity.Application{ID: appID, OwnerID: callerID, Name: "New name", Income: 200}

	uc.EXPECT().
		Update(mock.Anything, callerID, appID, mock.AnythingOfType("*usecase.ApplicationInput")).
		Run(func(ctx context.Context, gotCaller uuid.UUID, gotID uuid.UUID, input *usecase.ApplicationInput) {
			assert.Equal(t, "New name", input.Name)
		}).
		Return(updated, nil)

	c, rec := newTestContext(t, http.MethodPut, "/applications/"+appID.String(),
		`{"name":"New name","income":200}`)
	c.SetParamNames("id")
	c.SetParamValues(appID.String())
	c.Set("userID", callerID)

	err := h.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New name")
}

func TestApplicationHandler_Delete_Success(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	appID := uuid.New()

	uc.EXPECT().Delete(mock.Anything, callerID, appID).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/applications/"+appID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(appID.String())
	c.Set("userID", callerID)

	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplicationHandler_Delete_NotFound(t *testing.T) {
	uc := mockUc.NewMockApplicationUsecase(t)
	h := NewApplicationHandler(uc, newTestLogger())

	callerID := uuid.New()
	appID := uuid.New()

	uc.EXPECT().
		Delete(mock.Anything, callerID, appID).
		Return(errors.Wrap(domainerrors.ErrApplicationNotFound, "application not found"))

	c, _ := newTestContext(t, http.MethodDelete, "/applications/"+appID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(appID.String())
	c.Set("userID", callerID)

	err := h.Delete(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
}
