package handler

import (
	"log/slog"
	"net/http"
	"time"

	"finledger/internal/delivery/http/response"
	"finledger/internal/domain/entity"
	"finledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplicationResponse is the wire shape of an application record.
type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Income      float64   `json:"income"`
	Expenses    float64   `json:"expenses"`
	Assets      float64   `json:"assets"`
	Liabilities float64   `json:"liabilities"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toApplicationResponse(app *entity.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:          app.ID,
		OwnerID:     app.OwnerID,
		Name:        app.Name,
		Income:      app.Income,
		Expenses:    app.Expenses,
		Assets:      app.Assets,
		Liabilities: app.Liabilities,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

func toApplicationResponses(apps []*entity.Application) []*ApplicationResponse {
	out := make([]*ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}

	return out
}

// ApplicationHandler holds dependencies for application record handlers.
// Every route it serves sits behind the authentication middleware, so the
// caller identity is always present on the context.
type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	logger *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(uc usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		uc:     uc,
		logger: logger,
	}
}

// callerID reads the authenticated user ID that the auth middleware put on
// the context.
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// pathID parses the :id route parameter. A malformed value is a client error,
// not a lookup miss.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid application id")
	}

	return id, nil
}

// Create handles the creation of a new application record for the caller.
func (h *ApplicationHandler) Create(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var input *usecase.ApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	app, err := h.uc.Create(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toApplicationResponse(app), "Application created successfully")
}

// List returns every application record owned by the caller.
func (h *ApplicationHandler) List(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	apps, err := h.uc.List(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationResponses(apps), "Applications retrieved successfully")
}

// Get returns a single application record owned by the caller.
func (h *ApplicationHandler) Get(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid application ID")
	}

	app, err := h.uc.Get(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationResponse(app), "Application retrieved successfully")
}

// Update replaces the writable fields of an application record owned by the caller.
func (h *ApplicationHandler) Update(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid application ID")
	}

	var input *usecase.ApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	app, err := h.uc.Update(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationResponse(app), "Application updated successfully")
}

// Delete removes an application record owned by the caller.
func (h *ApplicationHandler) Delete(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid application ID")
	}

	if err := h.uc.Delete(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Application deleted"}, "Application deleted successfully")
}
