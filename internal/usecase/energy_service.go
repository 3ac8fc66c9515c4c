package usecase

import (
	"context"
	"log/slog"
	"time"

	"trace/config"
	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// energyService implements the EnergyUsecase interface.
type energyService struct {
	txManager  repository.TransactionManager
	energyRepo repository.EnergyRepository
	location   *time.Location
	logger     *slog.Logger
}

// NewEnergyService is the constructor for energyService. The configured
// timezone decides where the "today" day boundary falls; it defaults to the
// server's local zone when unset or unknown.
func NewEnergyService(
	txManager repository.TransactionManager,
	energyRepo repository.EnergyRepository,
	cfg *config.Config,
	logger *slog.Logger,
) EnergyUsecase {
	location := time.Local
	if cfg.Energy != nil && cfg.Energy.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Energy.Timezone)
		if err != nil {
			logger.Warn("Unknown energy timezone, falling back to local", "timezone", cfg.Energy.Timezone)
		} else {
			location = loc
		}
	}

	return &energyService{
		txManager:  txManager,
		energyRepo: energyRepo,
		location:   location,
		logger:     logger,
	}
}

// todayRange returns the half-open [midnight, next midnight) window of the
// current calendar day in the configured timezone.
func (srv *energyService) todayRange() (time.Time, time.Time) {
	now := time.Now().In(srv.location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, srv.location)

	return from, from.AddDate(0, 0, 1)
}

// RecordToday upserts the user's record for (today, energy type). The
// check-then-act pair runs inside one transaction so two concurrent reports
// of the same type cannot both insert.
func (srv *energyService) RecordToday(ctx context.Context, userID uuid.UUID, input *RecordEnergyInput) (*RecordEnergyOutput, error) {
	energyType := entity.EnergyType(input.EnergyType)
	if !energyType.IsValid() {
		return nil, domainerrors.ErrInvalidEnergyType.WrapMessage("unknown energy type " + input.EnergyType)
	}

	from, to := srv.todayRange()

	var stored *entity.EnergyRecord
	var action string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		energyRepo := repoFactory.EnergyRepo()

		existing, err := energyRepo.FindByUserTypeWithin(ctx, userID, energyType, from, to)
		switch {
		case err == nil:
			// Second report of the day overwrites the first.
			existing.Value = input.EnergyValue
			existing.Description = input.Description
			if err := energyRepo.Update(ctx, existing); err != nil {
				return errors.WithStack(err)
			}
			stored = existing
			action = EnergyActionUpdated
		case errors.Is(err, repository.ErrEnergyRecordNotFound):
			record := &entity.EnergyRecord{
				UserID:      userID,
				Type:        energyType,
				Value:       input.EnergyValue,
				Description: input.Description,
			}
			if err := energyRepo.Create(ctx, record); err != nil {
				return errors.WithStack(err)
			}
			stored = record
			action = EnergyActionCreated
		default:
			return errors.Wrap(err, "failed to find today's energy record")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute energy record transaction", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to execute energy record transaction")
	}
	srv.logger.Debug("Energy record stored", "userID", userID, "type", energyType, "action", action)

	return &RecordEnergyOutput{Record: stored, Action: action}, nil
}

// ListToday returns all of the user's records for the current day.
func (srv *energyService) ListToday(ctx context.Context, userID uuid.UUID) (*TodayEnergyOutput, error) {
	from, to := srv.todayRange()

	records, err := srv.energyRepo.ListByUserWithin(ctx, userID, from, to)
	if err != nil {
		srv.logger.Error("Failed to list today's energy records", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to list today's energy records")
	}

	return &TodayEnergyOutput{
		Records: records,
		Count:   len(records),
		Today:   from.Format("2006-01-02"),
	}, nil
}
