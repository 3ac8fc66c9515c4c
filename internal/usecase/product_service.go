package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"
	"trace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface. It covers both the
// registry side (operator CRUD) and the public verification workflow.
type productService struct {
	txManager        repository.TransactionManager
	productRepo      repository.ProductRepository
	verificationRepo repository.VerificationRepository
	codeGenerator    service.AntiFakeCodeGenerator
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	verificationRepo repository.VerificationRepository,
	codeGenerator service.AntiFakeCodeGenerator,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) ProductUsecase {
	return &productService{
		txManager:        txManager,
		productRepo:      productRepo,
		verificationRepo: verificationRepo,
		codeGenerator:    codeGenerator,
		qrcodeService:    qrcodeService,
		logger:           logger,
	}
}

func parseProductStatus(raw string) (entity.ProductStatus, error) {
	switch status := entity.ProductStatus(raw); status {
	case entity.ProductStatusActive, entity.ProductStatusSuspended, entity.ProductStatusRecalled:
		return status, nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown product status " + raw)
	}
}

func (srv *productService) buildProduct(operatorID uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	status := entity.ProductStatusActive
	if input.Status != "" {
		parsed, err := parseProductStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	antiFakeCode := input.AntiFakeCode
	if antiFakeCode == "" {
		antiFakeCode = srv.codeGenerator.Generate()
	}

	return &entity.Product{
		ChipID:          input.ChipID,
		SNCode:          input.SNCode,
		QRCode:          input.QRCode,
		ProductName:     input.ProductName,
		ProductModel:    input.ProductModel,
		BatchNumber:     input.BatchNumber,
		ManufactureDate: input.ManufactureDate,
		FactoryLocation: input.FactoryLocation,
		ProductionLine:  input.ProductionLine,
		OperatorID:      operatorID,
		AntiFakeCode:    antiFakeCode,
		Status:          status,
		Metadata:        input.Metadata,
	}, nil
}

// Create registers one product unit on behalf of an operator. Uniqueness of
// chip_id, sn_code and anti_fake_code rests on the database constraints, so
// a concurrent duplicate insert loses cleanly instead of racing a pre-check.
func (srv *productService) Create(ctx context.Context, operatorID uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	product, err := srv.buildProduct(operatorID, input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateProductKey) {
			return nil, domainerrors.ErrProductKeyConflict.WrapMessage("product registration failed")
		}
		srv.logger.Error("Failed to create product", "error", err, "chipID", input.ChipID)

		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.logger.Info("Product registered", "productID", product.ID, "chipID", product.ChipID, "operatorID", operatorID)

	return product, nil
}

// BatchImport registers up to MaxBatchImportSize units atomically. The
// duplicate pre-check and the insert run in the same transaction; either
// every row lands or none does.
func (srv *productService) BatchImport(ctx context.Context, operatorID uuid.UUID, input *BatchImportInput) (*BatchImportOutput, error) {
	if len(input.Products) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty product batch")
	}
	if len(input.Products) > MaxBatchImportSize {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product batch exceeds limit")
	}

	products := make([]*entity.Product, 0, len(input.Products))
	chipIDs := make([]string, 0, len(input.Products))
	snCodes := make([]string, 0, len(input.Products))
	seenChipIDs := make(map[string]struct{}, len(input.Products))
	seenSNCodes := make(map[string]struct{}, len(input.Products))
	conflicts := &BatchConflicts{}

	for _, item := range input.Products {
		if item.ChipID == "" || item.SNCode == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("every product needs chip_id and sn_code")
		}

		// Collisions inside the request itself are rejected up front.
		if _, dup := seenChipIDs[item.ChipID]; dup {
			conflicts.DuplicateChipIDs = append(conflicts.DuplicateChipIDs, item.ChipID)
		}
		if _, dup := seenSNCodes[item.SNCode]; dup {
			conflicts.DuplicateSNCodes = append(conflicts.DuplicateSNCodes, item.SNCode)
		}
		seenChipIDs[item.ChipID] = struct{}{}
		seenSNCodes[item.SNCode] = struct{}{}

		product, err := srv.buildProduct(operatorID, item)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
		chipIDs = append(chipIDs, item.ChipID)
		snCodes = append(snCodes, item.SNCode)
	}

	if len(conflicts.DuplicateChipIDs) > 0 || len(conflicts.DuplicateSNCodes) > 0 {
		return nil, batchConflictError(conflicts)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		existing, err := productRepo.FindKeysIn(ctx, chipIDs, snCodes)
		if err != nil {
			return errors.WithStack(err)
		}
		if len(existing) > 0 {
			for _, key := range existing {
				if _, ok := seenChipIDs[key.ChipID]; ok {
					conflicts.DuplicateChipIDs = append(conflicts.DuplicateChipIDs, key.ChipID)
				}
				if _, ok := seenSNCodes[key.SNCode]; ok {
					conflicts.DuplicateSNCodes = append(conflicts.DuplicateSNCodes, key.SNCode)
				}
			}

			return batchConflictError(conflicts)
		}

		return errors.WithStack(productRepo.CreateBatch(ctx, products))
	})

	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProductKey) {
			// A row slipped in between nothing: the pre-check and insert share
			// one transaction, so this only fires on anti_fake_code collisions.
			return nil, domainerrors.ErrBatchDuplicateKeys.WrapMessage("batch import failed")
		}
		srv.logger.Error("Failed to execute batch import transaction", "error", err, "count", len(products))

		return nil, errors.Wrap(err, "failed to execute batch import transaction")
	}
	srv.logger.Info("Batch import completed", "count", len(products), "operatorID", operatorID)

	return &BatchImportOutput{
		ImportedCount: len(products),
		Products:      products,
	}, nil
}

// batchConflictError packs the colliding keys into the error details so the
// delivery layer can echo them back.
func batchConflictError(conflicts *BatchConflicts) error {
	details, err := json.Marshal(conflicts)
	if err != nil {
		return domainerrors.ErrBatchDuplicateKeys
	}

	return domainerrors.ErrBatchDuplicateKeys.WithDetails(string(details))
}

// Get returns one product. Viewing the detail page counts as an inspection,
// so the verification counter is bumped as a best-effort side effect.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.productRepo.IncrementVerificationCount(ctx, id); err != nil {
		srv.logger.Warn("Failed to increment verification count", "error", err, "productID", id)
	} else {
		product.VerificationCount++
	}

	return product, nil
}

// Update applies a partial update to a product's mutable fields.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	update := &entity.ProductUpdate{
		ProductName:  input.ProductName,
		ProductModel: input.ProductModel,
		BatchNumber:  input.BatchNumber,
		Metadata:     input.Metadata,
	}
	if input.Status != nil {
		status, err := parseProductStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		update.Status = &status
	}

	product, err := srv.productRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.logger.Error("Failed to update product", "error", err, "productID", id)

		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.logger.Info("Product updated", "productID", id)

	return product, nil
}

// List returns a filtered registry page.
func (srv *productService) List(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error) {
	if err := validatePageWindow(input.Page, input.Limit); err != nil {
		return nil, err
	}

	offset := (input.Page - 1) * input.Limit

	products, total, err := srv.productRepo.List(ctx, input.Filter, offset, input.Limit)
	if err != nil {
		srv.logger.Error("Failed to list products", "error", err)

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &ListProductsOutput{
		Products:   products,
		Pagination: NewPagination(input.Page, input.Limit, total),
	}, nil
}

// ProductQR renders the product's anti-fake code as a PNG QR image.
func (srv *productService) ProductQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	png, err := srv.qrcodeService.GenerateProductQR(product.AntiFakeCode)
	if err != nil {
		srv.logger.Error("Failed to generate product QR code", "error", err, "productID", id)

		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}
