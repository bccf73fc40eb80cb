// internal/controllers/telegram/actions.go
package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/telegram"
)

// ==================== ОБРАБОТКА CALLBACK-КНОПОК ====================

func (c *TelegramController) handleCallback(ctx context.Context, chatID int64, query *TelegramCallbackQuery) {
	action, err := parseCallbackData(query.Data)
	if err != nil {
		c.logger.Warn("Некорректные callback-данные",
			zap.Int64("chat_id", chatID),
			zap.String("data", query.Data),
			zap.Error(err))
		_ = c.tgService.AnswerCallbackQuery(ctx, query.ID, "❌ Некорректный запрос")
		return
	}

	_ = c.tgService.AnswerCallbackQuery(ctx, query.ID, "")
	messageID := query.Message.MessageID

	switch action.Action {
	case actionMoveStart:
		_ = c.handleMoveStart(ctx, chatID, messageID, action.EquipmentID)
	case actionMoveTo:
		_ = c.handleMoveTo(ctx, chatID, messageID, action.EquipmentID, action.ChoiceIndex)
	case actionStatusStart:
		_ = c.handleStatusStart(ctx, chatID, messageID, action.EquipmentID)
	case actionStatusSet:
		_ = c.handleStatusSet(ctx, chatID, messageID, action.EquipmentID, action.ChoiceIndex)
	}
}

// handleMoveStart показывает клавиатуру выбора локации, по три кнопки в ряд.
func (c *TelegramController) handleMoveStart(ctx context.Context, chatID int64, messageID int, equipmentID uint64) error {
	var keyboard [][]telegram.InlineKeyboardButton
	var currentRow []telegram.InlineKeyboardButton

	for idx, location := range constants.Locations {
		currentRow = append(currentRow, telegram.InlineKeyboardButton{
			Text:         location.String(),
			CallbackData: buildCallbackChoice(actionMoveTo, equipmentID, idx),
		})
		if len(currentRow) == 3 {
			keyboard = append(keyboard, currentRow)
			currentRow = nil
		}
	}
	if len(currentRow) > 0 {
		keyboard = append(keyboard, currentRow)
	}

	return c.tgService.EditMessageText(ctx, chatID, messageID,
		"Выберите новую локацию для перемещения оборудования:",
		telegram.WithKeyboard(keyboard))
}

// handleMoveTo вызывает Transition Engine. Индекс локации пришёл из внешнего
// мира и проверяется на принадлежность перечислению до обращения к ядру.
func (c *TelegramController) handleMoveTo(ctx context.Context, chatID int64, messageID int, equipmentID uint64, choiceIndex int) error {
	location, ok := constants.LocationByIndex(choiceIndex)
	if !ok {
		return c.tgService.EditMessageText(ctx, chatID, messageID,
			"❌ Такой локации не существует.")
	}

	movement, err := c.transitionService.Relocate(ctx, equipmentID, location)
	if err != nil {
		return c.tgService.EditMessageText(ctx, chatID, messageID, c.transitionErrorText(err))
	}

	return c.tgService.EditMessageText(ctx, chatID, messageID,
		fmt.Sprintf("✅ Оборудование перемещено из %s в %s.", movement.FromLocation, movement.ToLocation))
}

func (c *TelegramController) handleStatusStart(ctx context.Context, chatID int64, messageID int, equipmentID uint64) error {
	var row []telegram.InlineKeyboardButton
	for idx, status := range constants.Statuses {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         status.String(),
			CallbackData: buildCallbackChoice(actionStatusSet, equipmentID, idx),
		})
	}

	return c.tgService.EditMessageText(ctx, chatID, messageID,
		"Обновите статус оборудования:",
		telegram.WithKeyboard([][]telegram.InlineKeyboardButton{row}))
}

func (c *TelegramController) handleStatusSet(ctx context.Context, chatID int64, messageID int, equipmentID uint64, choiceIndex int) error {
	status, ok := constants.StatusByIndex(choiceIndex)
	if !ok {
		return c.tgService.EditMessageText(ctx, chatID, messageID,
			"❌ Такого статуса не существует.")
	}

	if err := c.transitionService.ChangeStatus(ctx, equipmentID, status); err != nil {
		return c.tgService.EditMessageText(ctx, chatID, messageID, c.transitionErrorText(err))
	}

	return c.tgService.EditMessageText(ctx, chatID, messageID,
		fmt.Sprintf("✅ Статус успешно обновлён на %s.", status))
}

func (c *TelegramController) transitionErrorText(err error) string {
	var enumErr *apperrors.InvalidEnumError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return "❌ Оборудование не найдено."
	case errors.Is(err, apperrors.ErrUpdateFailed):
		return "❌ Не удалось обновить оборудование, попробуйте ещё раз."
	case errors.As(err, &enumErr):
		return "❌ Недопустимое значение."
	default:
		return "❌ Что-то пошло не так. Попробуйте ещё раз позже."
	}
}
