package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
)

const equipmentTable = "equipment"
const equipmentFields = "id, name, description, location, status, responsible_person_id"

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context) ([]entities.Equipment, error)
	GetAvailableEquipment(ctx context.Context) ([]entities.Equipment, error)
	GetEquipmentByResponsible(ctx context.Context, employeeID uint64) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)

	// Методы переходов работают только внутри транзакции TxManager.
	FindEquipmentForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, location constants.Location) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status constants.Status) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

// scanEquipment собирает запись и отклоняет строки со значениями вне
// перечислений вместо того, чтобы сконструировать невалидную сущность.
func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var rawLocation, rawStatus string

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&rawLocation,
		&rawStatus,
		&e.ResponsiblePersonID,
	)
	if err != nil {
		return nil, err
	}

	location, ok := constants.ParseLocation(rawLocation)
	if !ok {
		return nil, fmt.Errorf("%w: оборудование %d содержит неизвестную локацию %q", apperrors.ErrStorage, e.ID, rawLocation)
	}
	status, ok := constants.ParseStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("%w: оборудование %d содержит неизвестный статус %q", apperrors.ErrStorage, e.ID, rawStatus)
	}

	e.Location = location
	e.Status = status
	return &e, nil
}

func (r *EquipmentRepository) getList(ctx context.Context, query string, args ...any) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *equipment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return list, nil
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", equipmentFields, equipmentTable)
	return r.getList(ctx, query)
}

func (r *EquipmentRepository) GetAvailableEquipment(ctx context.Context) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE status = $1 ORDER BY id", equipmentFields, equipmentTable)
	return r.getList(ctx, query, constants.StatusAvailable.String())
}

func (r *EquipmentRepository) GetEquipmentByResponsible(ctx context.Context, employeeID uint64) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE responsible_person_id = $1 ORDER BY id", equipmentFields, equipmentTable)
	return r.getList(ctx, query, employeeID)
}

func findEquipment(ctx context.Context, q querier, id uint64, lock bool) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)
	if lock {
		query += " FOR UPDATE"
	}

	equipment, err := scanEquipment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return equipment, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return findEquipment(ctx, r.storage, id, false)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, location, status, responsible_person_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, equipmentTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Name,
		payload.Description,
		payload.Location,
		payload.Status,
		payload.ResponsiblePersonID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return id, nil
}

// FindEquipmentForUpdate блокирует строку оборудования до конца транзакции.
// Параллельные переходы одной и той же единицы сериализуются на этой блокировке.
func (r *EquipmentRepository) FindEquipmentForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return findEquipment(ctx, tx, id, true)
}

func (r *EquipmentRepository) UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, location constants.Location) error {
	query := fmt.Sprintf("UPDATE %s SET location = $1 WHERE id = $2", equipmentTable)

	result, err := tx.Exec(ctx, query, location.String(), id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if result.RowsAffected() != 1 {
		return apperrors.ErrUpdateFailed
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status constants.Status) error {
	query := fmt.Sprintf("UPDATE %s SET status = $1 WHERE id = $2", equipmentTable)

	result, err := tx.Exec(ctx, query, status.String(), id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if result.RowsAffected() != 1 {
		return apperrors.ErrUpdateFailed
	}
	return nil
}
