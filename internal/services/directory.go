package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	apperrors "equipment-system/pkg/errors"
)

type DirectoryServiceInterface interface {
	ListForViewer(ctx context.Context, telegramID int64) ([]entities.Equipment, *entities.Employee, error)
	// FindEmployeeByTelegram возвращает (nil, nil) для незарегистрированного
	// идентификатора.
	FindEmployeeByTelegram(ctx context.Context, telegramID int64) (*entities.Employee, error)
	ResponsibleFor(ctx context.Context, equipmentID uint64) (*entities.Employee, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	GetEquipment(ctx context.Context) ([]entities.Equipment, error)
	GetMovements(ctx context.Context, filter dto.MovementFilterDTO) ([]entities.EquipmentMovement, error)
}

// DirectoryService — читающая сторона: списки оборудования с учётом того, кто
// спрашивает, и поиск ответственного сотрудника.
type DirectoryService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	employeeRepo  repositories.EmployeeRepositoryInterface
	movementRepo  repositories.MovementRepositoryInterface
	logger        *zap.Logger
}

func NewDirectoryService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	movementRepo repositories.MovementRepositoryInterface,
	logger *zap.Logger,
) *DirectoryService {
	return &DirectoryService{
		equipmentRepo: equipmentRepo,
		employeeRepo:  employeeRepo,
		movementRepo:  movementRepo,
		logger:        logger,
	}
}

// ListForViewer возвращает список оборудования и сотрудника, если идентификатор
// Telegram принадлежит зарегистрированному сотруднику. Зарегистрированный
// видит весь инвентарь, анонимный — только Available: кто держит занятое
// оборудование и где оно находится, посторонним не показывается.
func (s *DirectoryService) ListForViewer(ctx context.Context, telegramID int64) ([]entities.Equipment, *entities.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByTelegramID(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		employee = nil
	}

	if employee == nil {
		list, err := s.equipmentRepo.GetAvailableEquipment(ctx)
		return list, nil, err
	}

	list, err := s.equipmentRepo.GetEquipment(ctx)
	return list, employee, err
}

func (s *DirectoryService) FindEmployeeByTelegram(ctx context.Context, telegramID int64) (*entities.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employee, nil
}

// ResponsibleFor возвращает (nil, nil) для оборудования без ответственного.
// ErrNotFound означает, что самого оборудования не существует.
func (s *DirectoryService) ResponsibleFor(ctx context.Context, equipmentID uint64) (*entities.Employee, error) {
	employee, err := s.employeeRepo.FindResponsibleForEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if employee != nil {
		return employee, nil
	}

	// JOIN ничего не вернул: либо оборудование без ответственного, либо
	// такого оборудования нет вовсе. Различаем эти случаи.
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *DirectoryService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *DirectoryService) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipment(ctx)
}

func (s *DirectoryService) GetMovements(ctx context.Context, filter dto.MovementFilterDTO) ([]entities.EquipmentMovement, error) {
	return s.movementRepo.GetMovements(ctx, filter)
}
