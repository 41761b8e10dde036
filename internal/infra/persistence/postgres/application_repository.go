package postgres

import (
	"context"

	"finledger/internal/domain/entity"
	"finledger/internal/domain/repository"
	"finledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// applicationRepository implements repository.ApplicationRepository using GORM.
// Every lookup and mutation carries the owner in its predicate, so a record
// belonging to another user is indistinguishable from one that does not exist.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create persists a new application record.
func (repo *applicationRepository) Create(ctx context.Context, app *entity.Application) error {
	appM := fromApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		return errors.Wrap(err, "failed to create application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// FindByOwner retrieves all applications belonging to the given owner.
func (repo *applicationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Application, error) {
	var appModels []model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&appModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applications by owner")
	}

	apps := make([]*entity.Application, 0, len(appModels))
	for i := range appModels {
		apps = append(apps, toApplicationDomain(&appModels[i]))
	}

	return apps, nil
}

// FindByIDAndOwner retrieves a single application scoped to its owner.
func (repo *applicationRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Application, error) {
	var appM model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	return toApplicationDomain(&appM), nil
}

// Update modifies an application scoped to its owner. Zero rows affected
// means the record is absent or foreign; both surface as not found.
func (repo *applicationRepository) Update(ctx context.Context, app *entity.Application) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ? AND owner_id = ?", app.ID, app.OwnerID).
		Updates(map[string]any{
			"name":        app.Name,
			"income":      app.Income,
			"expenses":    app.Expenses,
			"assets":      app.Assets,
			"liabilities": app.Liabilities,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// DeleteByIDAndOwner removes an application scoped to its owner.
func (repo *applicationRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ApplicationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Income:      data.Income,
		Expenses:    data.Expenses,
		Assets:      data.Assets,
		Liabilities: data.Liabilities,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Income:      data.Income,
		Expenses:    data.Expenses,
		Assets:      data.Assets,
		Liabilities: data.Liabilities,
	}
}
