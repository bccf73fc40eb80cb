package services

import (
	"context"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error)
}

// EmployeeService — заведение и чтение сотрудников через админ-API.
// Обновления и удаления у сотрудников в этой системе нет.
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	logger       *zap.Logger
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	return s.employeeRepo.GetEmployees(ctx)
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return s.employeeRepo.FindEmployee(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	id, err := s.employeeRepo.CreateEmployee(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Сотрудник создан", zap.Uint64("id", id))
	return s.employeeRepo.FindEmployee(ctx, id)
}
