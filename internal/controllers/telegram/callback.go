package telegram

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback-данные кнопок: "<действие>:<id оборудования>[:<индекс выбора>]".
// В данных передаётся индекс элемента перечисления, а не сама строка:
// callback_data ограничена 64 байтами, и индекс проверяется на принадлежность
// перечислению при разборе.
const (
	actionMoveStart   = "move"
	actionMoveTo      = "mvto"
	actionStatusStart = "status"
	actionStatusSet   = "stset"
)

type callbackAction struct {
	Action      string
	EquipmentID uint64
	ChoiceIndex int
}

func buildCallbackData(action string, equipmentID uint64) string {
	return fmt.Sprintf("%s:%d", action, equipmentID)
}

func buildCallbackChoice(action string, equipmentID uint64, choiceIndex int) string {
	return fmt.Sprintf("%s:%d:%d", action, equipmentID, choiceIndex)
}

// parseCallbackData разбирает сырые callback-данные. Данные приходят извне,
// любое отклонение от формата — ошибка, не паника.
func parseCallbackData(raw string) (*callbackAction, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("неверный формат callback-данных: %q", raw)
	}

	action := parts[0]
	switch action {
	case actionMoveStart, actionMoveTo, actionStatusStart, actionStatusSet:
	default:
		return nil, fmt.Errorf("неизвестное действие: %q", action)
	}

	equipmentID, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("неверный id оборудования в callback-данных: %q", parts[1])
	}

	result := &callbackAction{
		Action:      action,
		EquipmentID: equipmentID,
		ChoiceIndex: -1,
	}

	needsChoice := action == actionMoveTo || action == actionStatusSet
	if needsChoice != (len(parts) == 3) {
		return nil, fmt.Errorf("неверное число частей callback-данных: %q", raw)
	}
	if needsChoice {
		idx, err := strconv.Atoi(parts[2])
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("неверный индекс выбора в callback-данных: %q", parts[2])
		}
		result.ChoiceIndex = idx
	}

	return result, nil
}
