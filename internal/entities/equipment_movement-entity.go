package entities

import (
	"time"

	"equipment-system/pkg/constants"
)

// EquipmentMovement — неизменяемая запись журнала перемещений.
// Записи создаются ровно один раз при успешном Relocate и никогда
// не обновляются и не удаляются; упорядоченные по id, они восстанавливают
// полную историю локаций единицы оборудования.
type EquipmentMovement struct {
	ID           uint64             `json:"id"`
	EquipmentID  uint64             `json:"equipment_id"`
	FromLocation constants.Location `json:"from_location"`
	ToLocation   constants.Location `json:"to_location"`
	MovementDate time.Time          `json:"movement_date"`

	// Название оборудования из LEFT JOIN, не колонка таблицы.
	EquipmentName string `json:"equipment_name,omitempty" db:"-"`
}
