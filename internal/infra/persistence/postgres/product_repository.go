package postgres

import (
	"context"
	"encoding/json"
	"time"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"
	"trace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProductKey
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// CreateBatch persists all given products in one statement.
func (repo *productRepository) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	productModels := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		productM, err := fromProductDomain(product)
		if err != nil {
			return err
		}
		productModels = append(productModels, productM)
	}

	if err := repo.db.WithContext(ctx).Create(&productModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProductKey
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create products in batch")
	}

	for i, productM := range productModels {
		products[i].ID = productM.ID
		products[i].CreatedAt = productM.CreatedAt
		products[i].UpdatedAt = productM.UpdatedAt
	}

	return nil
}

// FindByID retrieves a product by its primary key.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByChipID retrieves a product by chip identifier.
func (repo *productRepository) FindByChipID(ctx context.Context, chipID string) (*entity.Product, error) {
	return repo.findOne(ctx, "chip_id = ?", chipID)
}

// FindBySNCode retrieves a product by serial number.
func (repo *productRepository) FindBySNCode(ctx context.Context, snCode string) (*entity.Product, error) {
	return repo.findOne(ctx, "sn_code = ?", snCode)
}

// FindByAntiFakeCode retrieves a product by anti-counterfeit code.
func (repo *productRepository) FindByAntiFakeCode(ctx context.Context, antiFakeCode string) (*entity.Product, error) {
	return repo.findOne(ctx, "anti_fake_code = ?", antiFakeCode)
}

func (repo *productRepository) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM)
}

// FindKeysIn returns the key pairs of existing products colliding with the given chip IDs or SN codes.
func (repo *productRepository) FindKeysIn(ctx context.Context, chipIDs, snCodes []string) ([]repository.ProductKey, error) {
	if len(chipIDs) == 0 && len(snCodes) == 0 {
		return nil, nil
	}

	var keys []repository.ProductKey

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("chip_id, sn_code").
		Where("chip_id IN ? OR sn_code IN ?", chipIDs, snCodes).
		Scan(&keys).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find existing product keys")
	}

	return keys, nil
}

// Update applies a partial update and returns the stored product.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, update *entity.ProductUpdate) (*entity.Product, error) {
	columns := map[string]any{}
	if update.ProductName != nil {
		columns["product_name"] = *update.ProductName
	}
	if update.ProductModel != nil {
		columns["product_model"] = *update.ProductModel
	}
	if update.BatchNumber != nil {
		columns["batch_number"] = *update.BatchNumber
	}
	if update.Status != nil {
		columns["status"] = string(*update.Status)
	}
	if update.Metadata != nil {
		metadata, err := metadataToJSON(update.Metadata)
		if err != nil {
			return nil, err
		}
		columns["metadata"] = metadata
	}

	if len(columns) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(columns)

		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}

		if result.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// List retrieves a page of products ordered by created_at descending, with the total row count.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.ChipID != "" {
		query = query.Where("chip_id = ?", filter.ChipID)
	}
	if filter.SNCode != "" {
		query = query.Where("sn_code = ?", filter.SNCode)
	}
	if filter.BatchNumber != "" {
		query = query.Where("batch_number = ?", filter.BatchNumber)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}

	return products, total, nil
}

// IncrementVerificationCount bumps the verification counter without touching last_verified_at.
func (repo *productRepository) IncrementVerificationCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("verification_count", gorm.Expr("verification_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment verification count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// RecordVerification bumps the verification counter, sets last_verified_at and
// returns the updated product.
func (repo *productRepository) RecordVerification(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (*entity.Product, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"verification_count": gorm.Expr("verification_count + 1"),
			"last_verified_at":   verifiedAt,
		})

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record verification")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to decode product metadata")
		}
	}

	return &entity.Product{
		ID:                data.ID,
		ChipID:            data.ChipID,
		SNCode:            data.SNCode,
		QRCode:            data.QRCode,
		ProductName:       data.ProductName,
		ProductModel:      data.ProductModel,
		BatchNumber:       data.BatchNumber,
		ManufactureDate:   data.ManufactureDate,
		FactoryLocation:   data.FactoryLocation,
		ProductionLine:    data.ProductionLine,
		OperatorID:        data.OperatorID,
		AntiFakeCode:      data.AntiFakeCode,
		Status:            entity.ProductStatus(data.Status),
		VerificationCount: data.VerificationCount,
		LastVerifiedAt:    data.LastVerifiedAt,
		Metadata:          metadata,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	metadata, err := metadataToJSON(data.Metadata)
	if err != nil {
		return nil, err
	}

	return &model.ProductModel{
		ID:                data.ID,
		ChipID:            data.ChipID,
		SNCode:            data.SNCode,
		QRCode:            data.QRCode,
		ProductName:       data.ProductName,
		ProductModel:      data.ProductModel,
		BatchNumber:       data.BatchNumber,
		ManufactureDate:   data.ManufactureDate,
		FactoryLocation:   data.FactoryLocation,
		ProductionLine:    data.ProductionLine,
		OperatorID:        data.OperatorID,
		AntiFakeCode:      data.AntiFakeCode,
		Status:            string(data.Status),
		VerificationCount: data.VerificationCount,
		LastVerifiedAt:    data.LastVerifiedAt,
		Metadata:          metadata,
	}, nil
}

func metadataToJSON(metadata map[string]any) (datatypes.JSON, error) {
	if metadata == nil {
		return nil, nil
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode metadata")
	}

	return datatypes.JSON(raw), nil
}
