package services

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
)

// Сервисы тестируются на in-memory репозиториях: та же семантика NotFound и
// RowsAffected, что у pgx-реализаций, но без поднятой базы. Транзакционность
// эмулируется снимком состояния в fakeTxManager.
type fakeStore struct {
	employees      map[uint64]entities.Employee
	equipment      map[uint64]entities.Equipment
	movements      []entities.EquipmentMovement
	nextMovementID uint64

	failLocationUpdate bool
	failStatusUpdate   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees:      make(map[uint64]entities.Employee),
		equipment:      make(map[uint64]entities.Equipment),
		nextMovementID: 1,
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, e := range s.employees {
		cp.employees[id] = e
	}
	for id, e := range s.equipment {
		cp.equipment[id] = e
	}
	cp.movements = append([]entities.EquipmentMovement(nil), s.movements...)
	cp.nextMovementID = s.nextMovementID
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.employees = from.employees
	s.equipment = from.equipment
	s.movements = from.movements
	s.nextMovementID = from.nextMovementID
}

// --- TxManager ---

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	saved := m.store.snapshot()
	if err := fn(nil); err != nil {
		m.store.restore(saved)
		return err
	}
	return nil
}

// --- EquipmentRepository ---

type fakeEquipmentRepo struct {
	store *fakeStore
}

func (r *fakeEquipmentRepo) sorted(filter func(e entities.Equipment) bool) []entities.Equipment {
	var list []entities.Equipment
	for _, e := range r.store.equipment {
		if filter == nil || filter(e) {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *fakeEquipmentRepo) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return r.sorted(nil), nil
}

func (r *fakeEquipmentRepo) GetAvailableEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return r.sorted(func(e entities.Equipment) bool { return e.Available() }), nil
}

func (r *fakeEquipmentRepo) GetEquipmentByResponsible(ctx context.Context, employeeID uint64) ([]entities.Equipment, error) {
	return r.sorted(func(e entities.Equipment) bool {
		return e.ResponsiblePersonID.Valid && uint64(e.ResponsiblePersonID.Int64) == employeeID
	}), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := r.store.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	id := uint64(len(r.store.equipment) + 1)
	r.store.equipment[id] = entities.Equipment{ID: id, Name: payload.Name}
	return id, nil
}

func (r *fakeEquipmentRepo) FindEquipmentForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return r.FindEquipment(ctx, id)
}

func (r *fakeEquipmentRepo) UpdateLocation(ctx context.Context, tx pgx.Tx, id uint64, location constants.Location) error {
	if r.store.failLocationUpdate {
		return apperrors.ErrUpdateFailed
	}
	e, ok := r.store.equipment[id]
	if !ok {
		return apperrors.ErrUpdateFailed
	}
	e.Location = location
	r.store.equipment[id] = e
	return nil
}

func (r *fakeEquipmentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status constants.Status) error {
	if r.store.failStatusUpdate {
		return apperrors.ErrUpdateFailed
	}
	e, ok := r.store.equipment[id]
	if !ok {
		return apperrors.ErrUpdateFailed
	}
	e.Status = status
	r.store.equipment[id] = e
	return nil
}

// --- MovementRepository ---

type fakeMovementRepo struct {
	store *fakeStore
}

func (r *fakeMovementRepo) InsertMovement(ctx context.Context, tx pgx.Tx, movement *entities.EquipmentMovement) (uint64, error) {
	id := r.store.nextMovementID
	r.store.nextMovementID++

	stored := *movement
	stored.ID = id
	if e, ok := r.store.equipment[movement.EquipmentID]; ok {
		stored.EquipmentName = e.Name
	}
	r.store.movements = append(r.store.movements, stored)
	return id, nil
}

func (r *fakeMovementRepo) GetMovements(ctx context.Context, filter dto.MovementFilterDTO) ([]entities.EquipmentMovement, error) {
	var list []entities.EquipmentMovement
	for _, m := range r.store.movements {
		if filter.EquipmentID != 0 && m.EquipmentID != filter.EquipmentID {
			continue
		}
		list = append(list, m)
		if filter.Limit != 0 && uint64(len(list)) == filter.Limit {
			break
		}
	}
	return list, nil
}

// --- EmployeeRepository ---

type fakeEmployeeRepo struct {
	store *fakeStore
}

func (r *fakeEmployeeRepo) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	e, ok := r.store.employees[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*entities.Employee, error) {
	for _, e := range r.store.employees {
		if e.TelegramID == telegramID {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEmployeeRepo) FindResponsibleForEquipment(ctx context.Context, equipmentID uint64) (*entities.Employee, error) {
	equipment, ok := r.store.equipment[equipmentID]
	if !ok || !equipment.ResponsiblePersonID.Valid {
		return nil, nil
	}
	e, ok := r.store.employees[uint64(equipment.ResponsiblePersonID.Int64)]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	var list []entities.Employee
	for _, e := range r.store.employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeEmployeeRepo) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (uint64, error) {
	id := uint64(len(r.store.employees) + 1)
	r.store.employees[id] = entities.Employee{ID: id, TelegramID: payload.TelegramID}
	return id, nil
}
