// internal/controllers/telegram/commands.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/pkg/telegram"
)

// ==================== ОБРАБОТКА КОМАНД ====================

func (c *TelegramController) handleCommand(ctx context.Context, chatID int64, text string) {
	switch {
	case strings.HasPrefix(text, "/start"):
		_ = c.handleStartCommand(ctx, chatID)
	case strings.HasPrefix(text, "/equipment"):
		_ = c.handleEquipmentCommand(ctx, chatID)
	case strings.HasPrefix(text, "/movements"):
		_ = c.handleMovementsCommand(ctx, chatID)
	case strings.HasPrefix(text, "/help"):
		_ = c.handleHelpCommand(ctx, chatID)
	default:
		_ = c.tgService.SendMessage(ctx, chatID,
			"❓ Неизвестная команда. Используйте /help.")
	}
}

func (c *TelegramController) handleStartCommand(ctx context.Context, chatID int64) error {
	return c.tgService.SendMessage(ctx, chatID,
		"👋 Привет! Я бот для учёта оборудования. Используйте команды, чтобы узнать информацию об оборудовании. /help")
}

func (c *TelegramController) handleHelpCommand(ctx context.Context, chatID int64) error {
	helpText := "Доступные команды:\n" +
		"/start - Приветствие\n" +
		"/equipment - Список оборудования\n" +
		"/movements - История перемещений оборудования\n" +
		"/help - Показать эту справку"
	return c.tgService.SendMessage(ctx, chatID, helpText)
}

// handleEquipmentCommand показывает инвентарь с учётом того, кто спрашивает:
// зарегистрированный сотрудник видит всё оборудование с кнопками действий,
// анонимный — только Available без локации и статуса.
func (c *TelegramController) handleEquipmentCommand(ctx context.Context, chatID int64) error {
	equipmentList, viewer, err := c.directoryService.ListForViewer(ctx, chatID)
	if err != nil {
		c.logger.Error("Не удалось получить список оборудования", zap.Int64("chat_id", chatID), zap.Error(err))
		c.sendInternalError(ctx, chatID)
		return err
	}

	if len(equipmentList) == 0 {
		return c.tgService.SendMessage(ctx, chatID, "Оборудования пока нет.")
	}

	_ = c.tgService.SendMessage(ctx, chatID, "Вот список оборудования")

	for i := range equipmentList {
		equipment := &equipmentList[i]
		if viewer != nil {
			_ = c.sendEquipmentCard(ctx, chatID, equipment)
		} else {
			_ = c.sendPublicEquipmentCard(ctx, chatID, equipment)
		}
	}
	return nil
}

// sendEquipmentCard — полная карточка для сотрудника. Перемещение доступно
// только для Available-оборудования (как в исходной клавиатуре), смена
// статуса — всегда.
func (c *TelegramController) sendEquipmentCard(ctx context.Context, chatID int64, equipment *entities.Equipment) error {
	responsible, err := c.directoryService.ResponsibleFor(ctx, equipment.ID)
	if err != nil {
		c.logger.Warn("Не удалось получить ответственного",
			zap.Uint64("equipment_id", equipment.ID), zap.Error(err))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Название: %s\n", equipment.Name)
	if equipment.Description.Valid {
		fmt.Fprintf(&sb, "Описание: %s\n", equipment.Description.String)
	}
	fmt.Fprintf(&sb, "Локация: %s\n", equipment.Location)
	fmt.Fprintf(&sb, "Статус: %s\n", equipment.Status)
	if responsible != nil {
		fmt.Fprintf(&sb, "Ответственный: %s\n", responsible.FullName())
		fmt.Fprintf(&sb, "Контакт: @%s\n", responsible.TelegramUsername)
		fmt.Fprintf(&sb, "Телефон: %s\n", responsible.ContactNumber)
		fmt.Fprintf(&sb, "Почта: %s", responsible.Email)
	} else {
		sb.WriteString("Ответственный: не назначен")
	}

	row := []telegram.InlineKeyboardButton{}
	if equipment.Available() {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         "Переместить",
			CallbackData: buildCallbackData(actionMoveStart, equipment.ID),
		})
	}
	row = append(row, telegram.InlineKeyboardButton{
		Text:         "Изменить статус",
		CallbackData: buildCallbackData(actionStatusStart, equipment.ID),
	})

	return c.tgService.SendMessageEx(ctx, chatID,
		telegram.EscapeMarkdownV2(sb.String()),
		telegram.WithMarkdownV2(),
		telegram.WithKeyboard([][]telegram.InlineKeyboardButton{row}))
}

// sendPublicEquipmentCard — урезанная карточка для анонимного зрителя:
// без локации и статуса, только что можно взять и у кого спросить.
func (c *TelegramController) sendPublicEquipmentCard(ctx context.Context, chatID int64, equipment *entities.Equipment) error {
	responsible, err := c.directoryService.ResponsibleFor(ctx, equipment.ID)
	if err != nil {
		c.logger.Warn("Не удалось получить ответственного",
			zap.Uint64("equipment_id", equipment.ID), zap.Error(err))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Название: %s\n", equipment.Name)
	if equipment.Description.Valid {
		fmt.Fprintf(&sb, "Описание: %s\n", equipment.Description.String)
	}
	if responsible != nil {
		fmt.Fprintf(&sb, "Ответственный: %s\n", responsible.FullName())
		fmt.Fprintf(&sb, "Связаться: @%s", responsible.TelegramUsername)
	} else {
		sb.WriteString("Ответственный: не назначен")
	}

	return c.tgService.SendMessage(ctx, chatID, sb.String())
}

// handleMovementsCommand — история перемещений, только для зарегистрированных.
func (c *TelegramController) handleMovementsCommand(ctx context.Context, chatID int64) error {
	viewer, err := c.directoryService.FindEmployeeByTelegram(ctx, chatID)
	if err != nil {
		c.sendInternalError(ctx, chatID)
		return err
	}
	if viewer == nil {
		return c.tgService.SendMessage(ctx, chatID,
			"🔒 История перемещений доступна только сотрудникам.")
	}

	movements, err := c.directoryService.GetMovements(ctx, dto.MovementFilterDTO{})
	if err != nil {
		c.logger.Error("Не удалось получить историю перемещений", zap.Error(err))
		c.sendInternalError(ctx, chatID)
		return err
	}

	if len(movements) == 0 {
		return c.tgService.SendMessage(ctx, chatID, "Перемещений пока не было.")
	}

	var sb strings.Builder
	sb.WriteString("Вот список всех перемещений оборудования\n\n")
	for _, m := range movements {
		name := m.EquipmentName
		if name == "" {
			name = fmt.Sprintf("#%d", m.EquipmentID)
		}
		fmt.Fprintf(&sb, "Оборудование: %s\n", name)
		fmt.Fprintf(&sb, "Перемещено из %s\n", m.FromLocation)
		fmt.Fprintf(&sb, "в %s\n", m.ToLocation)
		fmt.Fprintf(&sb, "Дата перемещения: %s\n\n", m.MovementDate.Format("2006-01-02 15:04:05"))
	}

	return c.tgService.SendMessage(ctx, chatID, sb.String())
}
