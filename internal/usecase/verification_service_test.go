package usecase

import (
	"context"
	"testing"
	"time"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"
	mockRepo "trace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Verify_ActiveProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	verifiedAt := time.Now()
	product := &entity.Product{
		ID:           productID,
		ChipID:       "CHIP-001",
		SNCode:       "SN-001",
		AntiFakeCode: "AFTESTCODE123",
		Status:       entity.ProductStatusActive,
	}
	updated := &entity.Product{
		ID:                productID,
		ChipID:            "CHIP-001",
		SNCode:            "SN-001",
		AntiFakeCode:      "AFTESTCODE123",
		Status:            entity.ProductStatusActive,
		VerificationCount: 1,
		LastVerifiedAt:    &verifiedAt,
	}
	input := &VerifyProductInput{
		ChipID:   "CHIP-001",
		Location: "Shenzhen",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockVerificationRepo := mockRepo.NewMockVerificationRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)

			mockProductRepo.EXPECT().FindByChipID(ctx, "CHIP-001").Return(product, nil)
			mockProductRepo.EXPECT().
				RecordVerification(ctx, productID, mock.AnythingOfType("time.Time")).
				Return(updated, nil)

			mockVerificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.VerificationRecord")).
				Run(func(ctx context.Context, record *entity.VerificationRecord) {
					require.NotNil(t, record.ProductID)
					assert.Equal(t, productID, *record.ProductID)
					assert.True(t, record.Result)
					assert.Equal(t, "api", record.Method)
					assert.Equal(t, "Shenzhen", record.Location)
					assert.Equal(t, "验证成功", record.Notes)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Found)
	assert.True(t, output.Verified)
	assert.Equal(t, entity.ProductStatusActive, output.Status)
	require.NotNil(t, output.Product)
	assert.Equal(t, int64(1), output.Product.VerificationCount)
	assert.Equal(t, "AFTESTCODE123", output.Product.AntiFakeCode)
}

func TestProductService_Verify_UnknownKeyStillAudited(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &VerifyProductInput{AntiFakeCode: "AFBOGUS", Method: "scan"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockVerificationRepo := mockRepo.NewMockVerificationRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)

			mockProductRepo.EXPECT().
				FindByAntiFakeCode(ctx, "AFBOGUS").
				Return(nil, repository.ErrProductNotFound)

			// The failed attempt is still recorded, without a product reference.
			mockVerificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.VerificationRecord")).
				Run(func(ctx context.Context, record *entity.VerificationRecord) {
					assert.Nil(t, record.ProductID)
					assert.False(t, record.Result)
					assert.Equal(t, "scan", record.Method)
					assert.Equal(t, "验证失败: 产品不存在", record.Notes)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Found)
	assert.False(t, output.Verified)
	assert.Nil(t, output.Product)
}

func TestProductService_Verify_SuspendedProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{
		ID:     productID,
		SNCode: "SN-001",
		Status: entity.ProductStatusSuspended,
	}
	input := &VerifyProductInput{SNCode: "SN-001"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockVerificationRepo := mockRepo.NewMockVerificationRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)

			mockProductRepo.EXPECT().FindBySNCode(ctx, "SN-001").Return(product, nil)

			mockVerificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.VerificationRecord")).
				Run(func(ctx context.Context, record *entity.VerificationRecord) {
					require.NotNil(t, record.ProductID)
					assert.Equal(t, productID, *record.ProductID)
					assert.False(t, record.Result)
					assert.Equal(t, "验证失败: 产品状态为suspended", record.Notes)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Found)
	assert.False(t, output.Verified)
	assert.Equal(t, entity.ProductStatusSuspended, output.Status)
	assert.Nil(t, output.Product)
}

func TestProductService_Verify_ChipIDTakesPriority(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, ChipID: "CHIP-001", Status: entity.ProductStatusActive}
	// All three keys supplied; only chip_id is used for the lookup.
	input := &VerifyProductInput{
		ChipID:       "CHIP-001",
		SNCode:       "SN-OTHER",
		AntiFakeCode: "AFOTHER",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockVerificationRepo := mockRepo.NewMockVerificationRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)

			mockProductRepo.EXPECT().FindByChipID(ctx, "CHIP-001").Return(product, nil)
			mockProductRepo.EXPECT().
				RecordVerification(ctx, productID, mock.AnythingOfType("time.Time")).
				Return(product, nil)

			mockVerificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.VerificationRecord")).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Verified)
}

func TestProductService_Verify_NoLookupKeys(t *testing.T) {
	fx := createTestProductService(t)

	output, err := fx.service.Verify(context.Background(), &VerifyProductInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_Verify_FailureNoteKeepsCallerNotes(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &VerifyProductInput{AntiFakeCode: "AFBOGUS", Notes: "门店扫码核验"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockVerificationRepo := mockRepo.NewMockVerificationRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().VerificationRepo().Return(mockVerificationRepo)

			mockProductRepo.EXPECT().
				FindByAntiFakeCode(ctx, "AFBOGUS").
				Return(nil, repository.ErrProductNotFound)

			mockVerificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.VerificationRecord")).
				Run(func(ctx context.Context, record *entity.VerificationRecord) {
					assert.Equal(t, "验证失败: 门店扫码核验", record.Notes)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Found)
}

func TestProductService_ListVerificationHistory_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	records := []*entity.VerificationRecord{
		{ID: uuid.New(), ProductID: &productID, Result: true},
		{ID: uuid.New(), ProductID: &productID, Result: false},
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	fx.verificationRepo.EXPECT().
		ListByProduct(ctx, productID, 0, DefaultHistoryPageLimit).
		Return(records, int64(2), nil)

	output, err := fx.service.ListVerificationHistory(ctx, productID, 1, DefaultHistoryPageLimit)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Records, 2)
	assert.Equal(t, int64(2), output.Pagination.Total)
	assert.Equal(t, 1, output.Pagination.TotalPages)
}

func TestProductService_ListVerificationHistory_ProductNotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.ListVerificationHistory(ctx, productID, 1, DefaultHistoryPageLimit)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ListVerificationHistory_InvalidPagination(t *testing.T) {
	fx := createTestProductService(t)

	output, err := fx.service.ListVerificationHistory(context.Background(), uuid.New(), 0, 20)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPagination))
}
