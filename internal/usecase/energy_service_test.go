package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"trace/config"
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

// energyServiceFixtures holds all test dependencies for energy service tests.
type energyServiceFixtures struct {
	service    EnergyUsecase
	txManager  *mockRepo.MockTransactionManager
	energyRepo *mockRepo.MockEnergyRepository
}

func createTestEnergyService(t *testing.T) energyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	energyRepo := mockRepo.NewMockEnergyRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEnergyService(txManager, energyRepo, &config.Config{}, logger)

	return energyServiceFixtures{
		service:    service,
		txManager:  txManager,
		energyRepo: energyRepo,
	}
}

func TestEnergyService_RecordToday_CreatesFirstReport(t *testing.T) {
	fx := createTestEnergyService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &RecordEnergyInput{
		EnergyType:  "physical",
		EnergyValue: 7,
		Description: "morning run",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEnergyRepo := mockRepo.NewMockEnergyRepository(t)

			mockFactory.EXPECT().EnergyRepo().Return(mockEnergyRepo)

			mockEnergyRepo.EXPECT().
				FindByUserTypeWithin(ctx, userID, entity.EnergyTypePhysical,
					mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
				Return(nil, repository.ErrEnergyRecordNotFound)

			mockEnergyRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.EnergyRecord")).
				Run(func(ctx context.Context, record *entity.EnergyRecord) {
					record.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.RecordToday(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, EnergyActionCreated, output.Action)
	assert.Equal(t, entity.EnergyTypePhysical, output.Record.Type)
	assert.Equal(t, 7, output.Record.Value)
	assert.Equal(t, "morning run", output.Record.Description)
}

func TestEnergyService_RecordToday_OverwritesSecondReport(t *testing.T) {
	fx := createTestEnergyService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.EnergyRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        entity.EnergyTypeMental,
		Value:       3,
		Description: "foggy",
	}
	input := &RecordEnergyInput{
		EnergyType:  "mental",
		EnergyValue: 8,
		Description: "much better after lunch",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEnergyRepo := mockRepo.NewMockEnergyRepository(t)

			mockFactory.EXPECT().EnergyRepo().Return(mockEnergyRepo)

			mockEnergyRepo.EXPECT().
				FindByUserTypeWithin(ctx, userID, entity.EnergyTypeMental,
					mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
				Return(existing, nil)

			mockEnergyRepo.EXPECT().
				Update(ctx, existing).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.RecordToday(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, EnergyActionUpdated, output.Action)
	assert.Equal(t, existing.ID, output.Record.ID)
	assert.Equal(t, 8, output.Record.Value)
	assert.Equal(t, "much better after lunch", output.Record.Description)
}

func TestEnergyService_RecordToday_UnknownType(t *testing.T) {
	fx := createTestEnergyService(t)

	ctx := context.Background()
	input := &RecordEnergyInput{
		EnergyType:  "spiritual",
		EnergyValue: 5,
	}

	output, err := fx.service.RecordToday(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEnergyType))
}

func TestEnergyService_ListToday_Success(t *testing.T) {
	fx := createTestEnergyService(t)

	ctx := context.Background()
	userID := uuid.New()
	records := []*entity.EnergyRecord{
		{ID: uuid.New(), UserID: userID, Type: entity.EnergyTypeEmotional, Value: 6},
		{ID: uuid.New(), UserID: userID, Type: entity.EnergyTypePhysical, Value: 7},
	}

	fx.energyRepo.EXPECT().
		ListByUserWithin(ctx, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(records, nil)

	output, err := fx.service.ListToday(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 2, output.Count)
	assert.Len(t, output.Records, 2)
	assert.Equal(t, time.Now().Format("2006-01-02"), output.Today)
}

func TestEnergyService_ListToday_RepositoryError(t *testing.T) {
	fx := createTestEnergyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.energyRepo.EXPECT().
		ListByUserWithin(ctx, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.ListToday(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, output)
}
