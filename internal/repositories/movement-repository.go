package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
)

const movementTable = "equipment_movements"

type MovementRepositoryInterface interface {
	// InsertMovement выполняется внутри транзакции перехода вместе с
	// обновлением локации оборудования.
	InsertMovement(ctx context.Context, tx pgx.Tx, movement *entities.EquipmentMovement) (uint64, error)
	GetMovements(ctx context.Context, filter dto.MovementFilterDTO) ([]entities.EquipmentMovement, error)
}

type MovementRepository struct {
	storage *pgxpool.Pool
}

func NewMovementRepository(storage *pgxpool.Pool) MovementRepositoryInterface {
	return &MovementRepository{
		storage: storage,
	}
}

func (r *MovementRepository) InsertMovement(ctx context.Context, tx pgx.Tx, movement *entities.EquipmentMovement) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (equipment_id, from_location, to_location, movement_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, movementTable)

	var id uint64
	err := tx.QueryRow(ctx, query,
		movement.EquipmentID,
		movement.FromLocation.String(),
		movement.ToLocation.String(),
		movement.MovementDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return id, nil
}

// GetMovements возвращает журнал перемещений по возрастанию id, то есть в
// порядке вставки. Название оборудования подтягивается LEFT JOIN'ом, чтобы
// записи по удалённому оборудованию не терялись в выдаче.
func (r *MovementRepository) GetMovements(ctx context.Context, filter dto.MovementFilterDTO) ([]entities.EquipmentMovement, error) {
	builder := sq.Select(
		"m.id", "m.equipment_id", "m.from_location", "m.to_location", "m.movement_date",
		"COALESCE(eq.name, '')",
	).
		From(movementTable + " m").
		LeftJoin("equipment eq ON eq.id = m.equipment_id").
		OrderBy("m.id").
		PlaceholderFormat(sq.Dollar)

	if filter.EquipmentID != 0 {
		builder = builder.Where(sq.Eq{"m.equipment_id": filter.EquipmentID})
	}
	if filter.Limit != 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var movements []entities.EquipmentMovement
	for rows.Next() {
		var m entities.EquipmentMovement
		var rawFrom, rawTo string

		err := rows.Scan(&m.ID, &m.EquipmentID, &rawFrom, &rawTo, &m.MovementDate, &m.EquipmentName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}

		from, ok := constants.ParseLocation(rawFrom)
		if !ok {
			return nil, fmt.Errorf("%w: перемещение %d содержит неизвестную локацию %q", apperrors.ErrStorage, m.ID, rawFrom)
		}
		to, ok := constants.ParseLocation(rawTo)
		if !ok {
			return nil, fmt.Errorf("%w: перемещение %d содержит неизвестную локацию %q", apperrors.ErrStorage, m.ID, rawTo)
		}

		m.FromLocation = from
		m.ToLocation = to
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return movements, nil
}
