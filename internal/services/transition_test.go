package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"equipment-system/internal/entities"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
)

func newTransitionFixture() (*fakeStore, *TransitionService) {
	store := newFakeStore()
	svc := NewTransitionService(
		&fakeTxManager{store: store},
		&fakeEquipmentRepo{store: store},
		&fakeMovementRepo{store: store},
		zap.NewNop(),
	)
	return store, svc
}

func TestRelocate(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Name:     "Осциллограф Rigol",
		Location: constants.LocationRoom3333,
		Status:   constants.StatusAvailable,
	}

	fixedNow := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	movement, err := svc.Relocate(context.Background(), 1, constants.LocationCoworkingZone)
	require.NoError(t, err)
	require.NotNil(t, movement)

	assert.Equal(t, uint64(1), movement.EquipmentID)
	assert.Equal(t, constants.LocationRoom3333, movement.FromLocation)
	assert.Equal(t, constants.LocationCoworkingZone, movement.ToLocation)
	assert.Equal(t, fixedNow, movement.MovementDate)
	assert.NotZero(t, movement.ID)

	assert.Equal(t, constants.LocationCoworkingZone, store.equipment[1].Location)
	require.Len(t, store.movements, 1)
	assert.Equal(t, constants.LocationRoom3333, store.movements[0].FromLocation)
	assert.Equal(t, constants.LocationCoworkingZone, store.movements[0].ToLocation)
}

func TestRelocateSameLocation(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Name:     "Паяльная станция",
		Location: constants.LocationRepairWorkshop,
		Status:   constants.StatusAvailable,
	}

	movement, err := svc.Relocate(context.Background(), 1, constants.LocationRepairWorkshop)
	require.NoError(t, err)

	// Перенос в текущую локацию — не ошибка, и он тоже попадает в журнал.
	assert.Equal(t, constants.LocationRepairWorkshop, movement.FromLocation)
	assert.Equal(t, constants.LocationRepairWorkshop, movement.ToLocation)
	assert.Len(t, store.movements, 1)
}

func TestRelocateOccupiedEquipment(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Name:     "Ноутбук",
		Location: constants.LocationEngineeringRoom,
		Status:   constants.StatusOccupied,
	}

	// Статус не ограничивает перенос.
	_, err := svc.Relocate(context.Background(), 1, constants.LocationProductionZone)
	require.NoError(t, err)
	assert.Equal(t, constants.LocationProductionZone, store.equipment[1].Location)
}

func TestRelocateUnknownEquipment(t *testing.T) {
	store, svc := newTransitionFixture()

	movement, err := svc.Relocate(context.Background(), 999, constants.LocationInnerCourtyard)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, movement)
	assert.Empty(t, store.movements)
}

func TestRelocateInvalidLocation(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Location: constants.LocationRoom3333,
		Status:   constants.StatusAvailable,
	}

	movement, err := svc.Relocate(context.Background(), 1, constants.Location("Basement"))
	require.Error(t, err)

	var enumErr *apperrors.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "location", enumErr.Field)
	assert.Equal(t, "Basement", enumErr.Value)

	assert.Nil(t, movement)
	assert.Equal(t, constants.LocationRoom3333, store.equipment[1].Location)
	assert.Empty(t, store.movements)
}

func TestRelocateRollsBackMovementOnUpdateFailure(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Location: constants.LocationRoom3333,
		Status:   constants.StatusAvailable,
	}
	store.failLocationUpdate = true

	_, err := svc.Relocate(context.Background(), 1, constants.LocationCoworkingZone)
	require.ErrorIs(t, err, apperrors.ErrUpdateFailed)

	// Запись в журнале и обновление локации атомарны: раз обновление не
	// прошло, перемещения в журнале остаться не должно.
	assert.Empty(t, store.movements)
	assert.Equal(t, constants.LocationRoom3333, store.equipment[1].Location)
}

func TestChangeStatus(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Location: constants.LocationRoom3333,
		Status:   constants.StatusAvailable,
	}

	err := svc.ChangeStatus(context.Background(), 1, constants.StatusOccupied)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusOccupied, store.equipment[1].Status)
	// Смена статуса не попадает в журнал перемещений.
	assert.Empty(t, store.movements)
}

func TestChangeStatusInvalidStatus(t *testing.T) {
	store, svc := newTransitionFixture()
	store.equipment[1] = entities.Equipment{
		ID:       1,
		Location: constants.LocationRoom3333,
		Status:   constants.StatusAvailable,
	}

	err := svc.ChangeStatus(context.Background(), 1, constants.Status("Broken"))
	require.Error(t, err)

	var enumErr *apperrors.InvalidEnumError
	assert.True(t, errors.As(err, &enumErr))
	assert.Equal(t, constants.StatusAvailable, store.equipment[1].Status)
}

func TestChangeStatusUnknownEquipment(t *testing.T) {
	_, svc := newTransitionFixture()

	err := svc.ChangeStatus(context.Background(), 42, constants.StatusOccupied)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
