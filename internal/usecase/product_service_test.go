package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"
	mockRepo "trace/internal/mocks/repository"
	mockSvc "trace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service          ProductUsecase
	txManager        *mockRepo.MockTransactionManager
	productRepo      *mockRepo.MockProductRepository
	verificationRepo *mockRepo.MockVerificationRepository
	codeGenerator    *mockSvc.MockAntiFakeCodeGenerator
	qrcodeService    *mockSvc.MockQRCodeService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	codeGenerator := mockSvc.NewMockAntiFakeCodeGenerator(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(txManager, productRepo, verificationRepo, codeGenerator, qrcodeService, logger)

	return productServiceFixtures{
		service:          service,
		txManager:        txManager,
		productRepo:      productRepo,
		verificationRepo: verificationRepo,
		codeGenerator:    codeGenerator,
		qrcodeService:    qrcodeService,
	}
}

func TestProductService_Create_GeneratesAntiFakeCode(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	operatorID := uuid.New()
	input := &CreateProductInput{
		ChipID:      "CHIP-001",
		SNCode:      "SN-001",
		ProductName: "Smart Bottle",
	}

	fx.codeGenerator.EXPECT().Generate().Return("AFTESTCODE123")

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.Create(ctx, operatorID, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "CHIP-001", product.ChipID)
	assert.Equal(t, "AFTESTCODE123", product.AntiFakeCode)
	assert.Equal(t, entity.ProductStatusActive, product.Status)
	assert.Equal(t, operatorID, product.OperatorID)
}

func TestProductService_Create_KeepsSuppliedAntiFakeCode(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &CreateProductInput{
		ChipID:       "CHIP-002",
		SNCode:       "SN-002",
		AntiFakeCode: "AFCUSTOM42",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.Create(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, "AFCUSTOM42", product.AntiFakeCode)
}

func TestProductService_Create_DuplicateKey(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &CreateProductInput{
		ChipID: "CHIP-001",
		SNCode: "SN-001",
	}

	fx.codeGenerator.EXPECT().Generate().Return("AFTESTCODE123")
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateProductKey)

	product, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductKeyConflict))
}

func TestProductService_Create_UnknownStatus(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &CreateProductInput{
		ChipID: "CHIP-001",
		SNCode: "SN-001",
		Status: "destroyed",
	}

	product, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_BatchImport_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	operatorID := uuid.New()
	input := &BatchImportInput{
		Products: []*CreateProductInput{
			{ChipID: "CHIP-001", SNCode: "SN-001"},
			{ChipID: "CHIP-002", SNCode: "SN-002"},
		},
	}

	fx.codeGenerator.EXPECT().Generate().Return("AFGENERATED").Times(2)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindKeysIn(ctx, []string{"CHIP-001", "CHIP-002"}, []string{"SN-001", "SN-002"}).
				Return(nil, nil)

			mockProductRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.Product")).
				Run(func(ctx context.Context, products []*entity.Product) {
					assert.Len(t, products, 2)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.BatchImport(ctx, operatorID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 2, output.ImportedCount)
	assert.Len(t, output.Products, 2)
}

func TestProductService_BatchImport_EmptyBatch(t *testing.T) {
	fx := createTestProductService(t)

	output, err := fx.service.BatchImport(context.Background(), uuid.New(), &BatchImportInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_BatchImport_MissingKeys(t *testing.T) {
	fx := createTestProductService(t)

	input := &BatchImportInput{
		Products: []*CreateProductInput{
			{ChipID: "CHIP-001", SNCode: ""},
		},
	}

	output, err := fx.service.BatchImport(context.Background(), uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_BatchImport_IntraBatchDuplicate(t *testing.T) {
	fx := createTestProductService(t)

	input := &BatchImportInput{
		Products: []*CreateProductInput{
			{ChipID: "CHIP-001", SNCode: "SN-001"},
			{ChipID: "CHIP-001", SNCode: "SN-002"},
		},
	}

	fx.codeGenerator.EXPECT().Generate().Return("AFGENERATED").Times(2)

	output, err := fx.service.BatchImport(context.Background(), uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrBatchDuplicateKeys.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "CHIP-001")
}

func TestProductService_BatchImport_ExistingKeyConflict(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &BatchImportInput{
		Products: []*CreateProductInput{
			{ChipID: "CHIP-001", SNCode: "SN-001"},
		},
	}

	fx.codeGenerator.EXPECT().Generate().Return("AFGENERATED")

	conflictErr := domainerrors.ErrBatchDuplicateKeys.WithDetails(`{"duplicate_chip_ids":["CHIP-001"],"duplicate_sn_codes":null}`)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindKeysIn(ctx, []string{"CHIP-001"}, []string{"SN-001"}).
				Return([]repository.ProductKey{{ChipID: "CHIP-001", SNCode: "SN-OTHER"}}, nil)

			assert.Error(t, fn(mockFactory))
		}).
		Return(conflictErr)

	output, err := fx.service.BatchImport(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrBatchDuplicateKeys.ErrorCode(), appErr.ErrorCode())
}

func TestProductService_Get_BumpsVerificationCount(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, ChipID: "CHIP-001", VerificationCount: 3}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.productRepo.EXPECT().IncrementVerificationCount(ctx, productID).Return(nil)

	result, err := fx.service.Get(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.VerificationCount)
}

func TestProductService_Get_CounterFailureStillReturnsProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, ChipID: "CHIP-001", VerificationCount: 3}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.productRepo.EXPECT().IncrementVerificationCount(ctx, productID).Return(errors.New("timeout"))

	result, err := fx.service.Get(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.VerificationCount)
}

func TestProductService_Get_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	result, err := fx.service.Get(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Update_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	newName := "Smart Bottle v2"
	newStatus := "suspended"
	input := &UpdateProductInput{
		ProductName: &newName,
		Status:      &newStatus,
	}
	stored := &entity.Product{
		ID:          productID,
		ProductName: newName,
		Status:      entity.ProductStatusSuspended,
	}

	fx.productRepo.EXPECT().
		Update(ctx, productID, mock.AnythingOfType("*entity.ProductUpdate")).
		Run(func(ctx context.Context, id uuid.UUID, update *entity.ProductUpdate) {
			require.NotNil(t, update.ProductName)
			assert.Equal(t, newName, *update.ProductName)
			require.NotNil(t, update.Status)
			assert.Equal(t, entity.ProductStatusSuspended, *update.Status)
		}).
		Return(stored, nil)

	result, err := fx.service.Update(ctx, productID, input)

	require.NoError(t, err)
	assert.Equal(t, stored, result)
}

func TestProductService_Update_UnknownStatus(t *testing.T) {
	fx := createTestProductService(t)

	badStatus := "melted"
	input := &UpdateProductInput{Status: &badStatus}

	result, err := fx.service.Update(context.Background(), uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_Update_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		Update(ctx, productID, mock.AnythingOfType("*entity.ProductUpdate")).
		Return(nil, repository.ErrProductNotFound)

	result, err := fx.service.Update(ctx, productID, &UpdateProductInput{})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_List_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &ListProductsInput{
		Page:   1,
		Limit:  10,
		Filter: entity.ProductFilter{BatchNumber: "B-2026-08"},
	}
	products := []*entity.Product{
		{ID: uuid.New(), ChipID: "CHIP-001", BatchNumber: "B-2026-08"},
	}

	fx.productRepo.EXPECT().
		List(ctx, input.Filter, 0, 10).
		Return(products, int64(1), nil)

	output, err := fx.service.List(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Products, 1)
	assert.Equal(t, 1, output.Pagination.TotalPages)
	assert.False(t, output.Pagination.HasNext)
}

func TestProductService_List_InvalidPagination(t *testing.T) {
	fx := createTestProductService(t)

	output, err := fx.service.List(context.Background(), &ListProductsInput{Page: 0, Limit: 10})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPagination))
}

func TestProductService_ProductQR_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, AntiFakeCode: "AFTESTCODE123"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.qrcodeService.EXPECT().GenerateProductQR("AFTESTCODE123").Return(png, nil)

	result, err := fx.service.ProductQR(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestProductService_ProductQR_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	result, err := fx.service.ProductQR(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
