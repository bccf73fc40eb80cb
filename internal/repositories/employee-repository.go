package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
)

const employeeFields = "id, telegram_id, telegram_username, first_name, last_name, role, contact_number, email, location"

type EmployeeRepositoryInterface interface {
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*entities.Employee, error)
	// FindResponsibleForEquipment возвращает (nil, nil), если за оборудованием
	// никто не числится. ErrNotFound не используется для этого случая.
	FindResponsibleForEquipment(ctx context.Context, equipmentID uint64) (*entities.Employee, error)
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (uint64, error)
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeeRepository(storage *pgxpool.Pool) EmployeeRepositoryInterface {
	return &EmployeeRepository{
		storage: storage,
	}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.ID,
		&e.TelegramID,
		&e.TelegramUsername,
		&e.FirstName,
		&e.LastName,
		&e.Role,
		&e.ContactNumber,
		&e.Email,
		&e.Location,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees WHERE id = $1", employeeFields)

	employee, err := scanEmployee(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return employee, nil
}

func (r *EmployeeRepository) FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*entities.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees WHERE telegram_id = $1", employeeFields)

	employee, err := scanEmployee(r.storage.QueryRow(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return employee, nil
}

func (r *EmployeeRepository) FindResponsibleForEquipment(ctx context.Context, equipmentID uint64) (*entities.Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
			JOIN equipment eq ON eq.responsible_person_id = e.id
		WHERE eq.id = $1
	`, "e.id, e.telegram_id, e.telegram_username, e.first_name, e.last_name, e.role, e.contact_number, e.email, e.location")

	employee, err := scanEmployee(r.storage.QueryRow(ctx, query, equipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return employee, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees ORDER BY id", employeeFields)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var employees []entities.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return employees, nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (uint64, error) {
	query := `
		INSERT INTO employees (telegram_id, telegram_username, first_name, last_name, role, contact_number, email, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.TelegramID,
		payload.TelegramUsername,
		payload.FirstName,
		payload.LastName,
		payload.Role,
		payload.ContactNumber,
		payload.Email,
		payload.Location,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return id, nil
}
