package postgres

import (
	"context"
	"time"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"
	"trace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// energyRepository implements the repository.EnergyRepository interface using GORM.
type energyRepository struct {
	db *gorm.DB
}

// NewEnergyRepository is the constructor for energyRepository.
func NewEnergyRepository(db *gorm.DB) repository.EnergyRepository {
	return &energyRepository{
		db: db,
	}
}

// FindByUserTypeWithin retrieves the single record of the given type created inside [from, to).
func (repo *energyRepository) FindByUserTypeWithin(ctx context.Context, userID uuid.UUID, energyType entity.EnergyType, from, to time.Time) (*entity.EnergyRecord, error) {
	var recordM model.EnergyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND energy_type = ? AND created_at >= ? AND created_at < ?", userID, string(energyType), from, to).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnergyRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find energy record")
	}

	return toEnergyDomain(&recordM), nil
}

// ListByUserWithin retrieves all of a user's records created inside [from, to), newest first.
func (repo *energyRepository) ListByUserWithin(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.EnergyRecord, error) {
	var recordModels []*model.EnergyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list energy records")
	}

	records := make([]*entity.EnergyRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toEnergyDomain(recordM))
	}

	return records, nil
}

// Create persists a new record.
func (repo *energyRepository) Create(ctx context.Context, record *entity.EnergyRecord) error {
	recordM := fromEnergyDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create energy record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// Update overwrites value and description of an existing record.
func (repo *energyRepository) Update(ctx context.Context, record *entity.EnergyRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnergyRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"energy_value": record.Value,
			"description":  record.Description,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update energy record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEnergyRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEnergyDomain(data *model.EnergyRecordModel) *entity.EnergyRecord {
	if data == nil {
		return nil
	}

	return &entity.EnergyRecord{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.EnergyType(data.EnergyType),
		Value:       data.EnergyValue,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEnergyDomain(data *entity.EnergyRecord) *model.EnergyRecordModel {
	if data == nil {
		return nil
	}

	return &model.EnergyRecordModel{
		ID:          data.ID,
		UserID:      data.UserID,
		EnergyType:  string(data.Type),
		EnergyValue: data.Value,
		Description: data.Description,
	}
}
