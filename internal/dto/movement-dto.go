package dto

// MovementFilterDTO ограничивает выборку журнала перемещений.
// Нулевые значения означают «без фильтра».
type MovementFilterDTO struct {
	EquipmentID uint64 `query:"equipment_id"`
	Limit       uint64 `query:"limit"`
}
