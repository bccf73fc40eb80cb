package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/pkg/constants"
)

type demoEmployee struct {
	telegramID       int64
	telegramUsername string
	firstName        string
	lastName         string
	role             string
	contactNumber    string
	email            string
	location         constants.Location
}

type demoEquipment struct {
	name          string
	description   string
	location      constants.Location
	status        constants.Status
	responsibleIx int // индекс в списке сотрудников, -1 — без ответственного
}

var demoEmployees = []demoEmployee{
	{100001, "a_petrov", "Alexey", "Petrov", "Engineer", "+992900000001", "a.petrov@example.org", constants.LocationEngineeringRoom},
	{100002, "m_karimova", "Madina", "Karimova", "Lab Manager", "+992900000002", "m.karimova@example.org", constants.LocationRoom3333},
	{100003, "s_ivanov", "Sergey", "Ivanov", "Technician", "+992900000003", "s.ivanov@example.org", constants.LocationRepairWorkshop},
}

var demoEquipmentList = []demoEquipment{
	{"3D Printer Prusa MK4", "FDM-принтер, сопло 0.4", constants.LocationRoom3333, constants.StatusAvailable, 1},
	{"Oscilloscope Rigol DS1054Z", "4 канала, 50 МГц", constants.LocationEngineeringRoom, constants.StatusOccupied, 0},
	{"Soldering Station Hakko FX-888D", "", constants.LocationRepairWorkshop, constants.StatusAvailable, 2},
	{"Projector Epson EB-X06", "Переносной проектор", constants.LocationCoworkingZone, constants.StatusAvailable, -1},
}

// SeedDemoData наполняет пустую базу демонстрационными данными.
// Повторный запуск на непустой базе ничего не делает.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		log.Fatalf("❌ Не удалось проверить таблицу employees: %v", err)
	}
	if count > 0 {
		log.Println("База не пуста, наполнение пропущено.")
		return
	}

	log.Println("▶️  Запуск наполнения демо-данными...")

	employeeIDs := make([]uint64, 0, len(demoEmployees))
	for _, e := range demoEmployees {
		var id uint64
		err := db.QueryRow(ctx, `
			INSERT INTO employees (telegram_id, telegram_username, first_name, last_name, role, contact_number, email, location)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			e.telegramID, e.telegramUsername, e.firstName, e.lastName, e.role, e.contactNumber, e.email, e.location.String(),
		).Scan(&id)
		if err != nil {
			log.Fatalf("❌ Ошибка наполнения сотрудников: %v", err)
		}
		employeeIDs = append(employeeIDs, id)
	}

	for _, eq := range demoEquipmentList {
		var responsible interface{}
		if eq.responsibleIx >= 0 {
			responsible = employeeIDs[eq.responsibleIx]
		}
		var description interface{}
		if eq.description != "" {
			description = eq.description
		}
		_, err := db.Exec(ctx, `
			INSERT INTO equipment (name, description, location, status, responsible_person_id)
			VALUES ($1, $2, $3, $4, $5)`,
			eq.name, description, eq.location.String(), eq.status.String(), responsible,
		)
		if err != nil {
			log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
		}
	}

	log.Println("✅ Наполнение демо-данными завершено!")
}
