// pkg/constants/constants.go
package constants

//============== EQUIPMENT LOCATIONS ==============

// Location определяет тип для фиксированного набора физических локаций.
type Location string

const (
	LocationRoom3333        Location = "Room 3.333"
	LocationEngineeringRoom Location = "Engineering Room"
	LocationCoworkingZone   Location = "Co-working Zone"
	LocationProductionZone  Location = "Production Zone"
	LocationRepairWorkshop  Location = "Repair Workshop"
	LocationInnerCourtyard  Location = "Inner Courtyard"
)

// Locations перечисляет все локации в порядке вывода на клавиатуре бота.
var Locations = []Location{
	LocationRoom3333,
	LocationEngineeringRoom,
	LocationCoworkingZone,
	LocationProductionZone,
	LocationRepairWorkshop,
	LocationInnerCourtyard,
}

// String возвращает строковое представление локации.
func (l Location) String() string {
	return string(l)
}

func (l Location) Valid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLocation проверяет принадлежность сырой строки к перечислению локаций.
func ParseLocation(raw string) (Location, bool) {
	l := Location(raw)
	return l, l.Valid()
}

// LocationByIndex возвращает локацию по её позиции в Locations.
// Используется при разборе callback-данных из Telegram.
func LocationByIndex(idx int) (Location, bool) {
	if idx < 0 || idx >= len(Locations) {
		return "", false
	}
	return Locations[idx], true
}

//============== EQUIPMENT STATUSES ==============

// Status определяет тип для статуса оборудования.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusOccupied  Status = "Occupied"
)

var Statuses = []Status{
	StatusAvailable,
	StatusOccupied,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOccupied
}

func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

func StatusByIndex(idx int) (Status, bool) {
	if idx < 0 || idx >= len(Statuses) {
		return "", false
	}
	return Statuses[idx], true
}
