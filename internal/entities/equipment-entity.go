package entities

import (
	"github.com/aarondl/null/v8"

	"equipment-system/pkg/constants"
)

// Equipment — единица оборудования. location и status всегда принадлежат
// фиксированным перечислениям, за оборудованием может никто не числиться.
type Equipment struct {
	ID                  uint64             `json:"id"`
	Name                string             `json:"name"`
	Description         null.String        `json:"description,omitempty"`
	Location            constants.Location `json:"location"`
	Status              constants.Status   `json:"status"`
	ResponsiblePersonID null.Int64         `json:"responsible_person_id,omitempty"`
}

func (e *Equipment) Available() bool {
	return e.Status == constants.StatusAvailable
}

func (e *Equipment) Unassigned() bool {
	return !e.ResponsiblePersonID.Valid
}
