package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name                string      `json:"name" validate:"required"`
	Description         null.String `json:"description"`
	Location            string      `json:"location" validate:"required,equipment_location"`
	Status              string      `json:"status" validate:"required,equipment_status"`
	ResponsiblePersonID null.Int64  `json:"responsible_person_id"`
}

// RelocateDTO — запрос на переход оборудования в новую локацию (админ-API).
type RelocateDTO struct {
	Location string `json:"location" validate:"required,equipment_location"`
}

// ChangeStatusDTO — запрос на смену статуса оборудования (админ-API).
type ChangeStatusDTO struct {
	Status string `json:"status" validate:"required,equipment_status"`
}
