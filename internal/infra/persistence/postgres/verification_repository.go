package postgres

import (
	"context"
	"encoding/json"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"
	"trace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// verificationRepository implements the repository.VerificationRepository interface using GORM.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{
		db: db,
	}
}

// Create appends one verification attempt record.
func (repo *verificationRepository) Create(ctx context.Context, record *entity.VerificationRecord) error {
	recordM, err := fromVerificationDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// ListByProduct retrieves a page of a product's history ordered by created_at
// descending, with the total row count.
func (repo *verificationRepository) ListByProduct(ctx context.Context, productID uuid.UUID, offset, limit int) ([]*entity.VerificationRecord, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.VerificationRecordModel{}).
		Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count verification records")
	}

	var recordModels []*model.VerificationRecordModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list verification records")
	}

	records := make([]*entity.VerificationRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		record, err := toVerificationDomain(recordM)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	return records, total, nil
}

// --- Mapper Functions ---

func toVerificationDomain(data *model.VerificationRecordModel) (*entity.VerificationRecord, error) {
	if data == nil {
		return nil, nil
	}

	var deviceInfo map[string]any
	if len(data.DeviceInfo) > 0 {
		if err := json.Unmarshal(data.DeviceInfo, &deviceInfo); err != nil {
			return nil, errors.Wrap(err, "failed to decode device info")
		}
	}

	return &entity.VerificationRecord{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Method:     data.Method,
		Location:   data.Location,
		DeviceInfo: deviceInfo,
		Result:     data.Result,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}, nil
}

func fromVerificationDomain(data *entity.VerificationRecord) (*model.VerificationRecordModel, error) {
	if data == nil {
		return nil, nil
	}

	var deviceInfo datatypes.JSON
	if data.DeviceInfo != nil {
		raw, err := json.Marshal(data.DeviceInfo)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode device info")
		}
		deviceInfo = datatypes.JSON(raw)
	}

	return &model.VerificationRecordModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		Method:     data.Method,
		Location:   data.Location,
		DeviceInfo: deviceInfo,
		Result:     data.Result,
		Notes:      data.Notes,
	}, nil
}
