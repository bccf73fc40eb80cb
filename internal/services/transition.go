package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
)

type TransitionServiceInterface interface {
	Relocate(ctx context.Context, equipmentID uint64, newLocation constants.Location) (*entities.EquipmentMovement, error)
	ChangeStatus(ctx context.Context, equipmentID uint64, newStatus constants.Status) error
}

// TransitionService управляет переходами оборудования между локациями и
// статусами. Каждый переход выполняется одной транзакцией: строка
// оборудования блокируется, запись в журнал и обновление текущего состояния
// либо коммитятся вместе, либо откатываются вместе.
type TransitionService struct {
	txManager     repositories.TxManagerInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	movementRepo  repositories.MovementRepositoryInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewTransitionService(
	txManager repositories.TxManagerInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	movementRepo repositories.MovementRepositoryInterface,
	logger *zap.Logger,
) *TransitionService {
	return &TransitionService{
		txManager:     txManager,
		equipmentRepo: equipmentRepo,
		movementRepo:  movementRepo,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Relocate переносит оборудование в newLocation и фиксирует перемещение в
// журнале. from_location берётся из строки, уже заблокированной FOR UPDATE,
// поэтому при параллельных переносах одной единицы значение не может устареть.
// Перенос в текущую локацию не является особым случаем и тоже журналируется.
// Статус оборудования на перенос не влияет.
func (s *TransitionService) Relocate(ctx context.Context, equipmentID uint64, newLocation constants.Location) (*entities.EquipmentMovement, error) {
	if !newLocation.Valid() {
		return nil, apperrors.NewInvalidEnumError("location", newLocation.String())
	}

	var movement *entities.EquipmentMovement
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindEquipmentForUpdate(ctx, tx, equipmentID)
		if err != nil {
			return err
		}

		movement = &entities.EquipmentMovement{
			EquipmentID:  equipmentID,
			FromLocation: equipment.Location,
			ToLocation:   newLocation,
			MovementDate: s.now(),
		}

		movementID, err := s.movementRepo.InsertMovement(ctx, tx, movement)
		if err != nil {
			return err
		}
		movement.ID = movementID

		return s.equipmentRepo.UpdateLocation(ctx, tx, equipmentID, newLocation)
	})
	if err != nil {
		s.logger.Warn("Перенос оборудования не выполнен",
			zap.Uint64("equipment_id", equipmentID),
			zap.String("to_location", newLocation.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Оборудование перемещено",
		zap.Uint64("equipment_id", equipmentID),
		zap.String("from_location", movement.FromLocation.String()),
		zap.String("to_location", movement.ToLocation.String()))
	return movement, nil
}

// ChangeStatus обновляет статус оборудования. Запись в журнал перемещений не
// создаётся: смена статуса не входит в историю локаций.
func (s *TransitionService) ChangeStatus(ctx context.Context, equipmentID uint64, newStatus constants.Status) error {
	if !newStatus.Valid() {
		return apperrors.NewInvalidEnumError("status", newStatus.String())
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.equipmentRepo.FindEquipmentForUpdate(ctx, tx, equipmentID); err != nil {
			return err
		}
		return s.equipmentRepo.UpdateStatus(ctx, tx, equipmentID, newStatus)
	})
	if err != nil {
		s.logger.Warn("Смена статуса не выполнена",
			zap.Uint64("equipment_id", equipmentID),
			zap.String("status", newStatus.String()),
			zap.Error(err))
		return err
	}

	s.logger.Info("Статус оборудования обновлён",
		zap.Uint64("equipment_id", equipmentID),
		zap.String("status", newStatus.String()))
	return nil
}
