// internal/controllers/telegram/controller.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/repositories"
	"equipment-system/internal/services"
	"equipment-system/pkg/config"
	"equipment-system/pkg/telegram"
)

const (
	commandCooldownKey  = "tg_cooldown:cmd:%d"
	callbackCooldownKey = "tg_cooldown:cb:%d"

	maxMessageAgeSeconds = 120
	handlerTimeout       = 45 * time.Second
	cleanupInterval      = time.Minute
)

// TelegramController принимает вебхук Bot API и превращает команды и
// callback-кнопки в вызовы Directory/Transition сервисов. Любая ошибка ядра
// превращается в сообщение пользователю, сессия не падает.
type TelegramController struct {
	directoryService  services.DirectoryServiceInterface
	transitionService services.TransitionServiceInterface
	tgService         telegram.ServiceInterface
	cacheRepo         repositories.CacheRepositoryInterface
	deduplicator      *RequestDeduplicator
	logger            *zap.Logger
	cfg               config.TelegramConfig
}

func NewTelegramController(
	directoryService services.DirectoryServiceInterface,
	transitionService services.TransitionServiceInterface,
	tgService telegram.ServiceInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg config.TelegramConfig,
) *TelegramController {
	return &TelegramController{
		directoryService:  directoryService,
		transitionService: transitionService,
		tgService:         tgService,
		cacheRepo:         cacheRepo,
		deduplicator:      NewRequestDeduplicator(),
		logger:            logger,
		cfg:               cfg,
	}
}

func (c *TelegramController) HandleTelegramWebhook(ctx echo.Context) error {
	var update TelegramUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.NoContent(http.StatusOK)
	}

	// Telegram повторяет доставку при любом не-200 ответе, поэтому вебхук
	// всегда отвечает 200, а ошибки обрабатываются внутри.
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), handlerTimeout)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		c.processCallback(reqCtx, update.CallbackQuery)
	case update.Message != nil:
		c.processMessage(reqCtx, update.Message)
	}

	return ctx.NoContent(http.StatusOK)
}

func (c *TelegramController) processMessage(ctx context.Context, msg *TelegramMessage) {
	if msg.Date > 0 && time.Since(time.Unix(msg.Date, 0)) > maxMessageAgeSeconds*time.Second {
		return
	}

	chatID := msg.Chat.ID
	if !c.allowByCooldown(ctx, fmt.Sprintf(commandCooldownKey, chatID), c.cfg.CommandCooldown) {
		return
	}

	c.handleCommand(ctx, chatID, msg.Text)
}

func (c *TelegramController) processCallback(ctx context.Context, query *TelegramCallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	// Дубликаты кликов по одной кнопке отсекаются в памяти процесса,
	// частота кликов — кулдауном в Redis.
	if !c.deduplicator.TryAcquire(chatID, query.ID, time.Minute) {
		return
	}
	if !c.allowByCooldown(ctx, fmt.Sprintf(callbackCooldownKey, chatID), c.cfg.CallbackCooldown) {
		_ = c.tgService.AnswerCallbackQuery(ctx, query.ID, "⏳ Слишком часто, подождите немного")
		return
	}

	c.handleCallback(ctx, chatID, query)
}

// allowByCooldown возвращает true, если чат не под кулдауном. Недоступность
// Redis не блокирует бота.
func (c *TelegramController) allowByCooldown(ctx context.Context, key string, ttl time.Duration) bool {
	if ttl <= 0 {
		return true
	}
	acquired, err := c.cacheRepo.SetNX(ctx, key, "1", ttl)
	if err != nil {
		c.logger.Warn("Кулдаун недоступен, пропускаем проверку", zap.String("key", key), zap.Error(err))
		return true
	}
	return acquired
}

// StartCleanup запускает фоновую очистку дедупликатора и блокируется до
// отмены ctx. Без неё истёкшие ключи копились бы в памяти процесса.
func (c *TelegramController) StartCleanup(ctx context.Context) {
	c.logger.Info("Запуск фоновой очистки дедупликатора")
	c.deduplicator.Cleanup(ctx, cleanupInterval)
	c.logger.Info("Фоновая очистка дедупликатора остановлена")
}

func (c *TelegramController) sendInternalError(ctx context.Context, chatID int64) {
	_ = c.tgService.SendMessage(ctx, chatID, "❌ Что-то пошло не так. Попробуйте ещё раз позже.")
}

// ==================== СТРУКТУРЫ ВЕБХУКА ====================

type TelegramUpdate struct {
	UpdateID      int                    `json:"update_id"`
	Message       *TelegramMessage       `json:"message"`
	CallbackQuery *TelegramCallbackQuery `json:"callback_query"`
}

type TelegramMessage struct {
	MessageID int          `json:"message_id"`
	From      TelegramUser `json:"from"`
	Chat      TelegramChat `json:"chat"`
	Text      string       `json:"text"`
	Date      int64        `json:"date"`
}

type TelegramUser struct {
	ID int64 `json:"id"`
}

type TelegramChat struct {
	ID int64 `json:"id"`
}

type TelegramCallbackQuery struct {
	ID      string           `json:"id"`
	From    TelegramUser     `json:"from"`
	Message *TelegramMessage `json:"message"`
	Data    string           `json:"data"`
}
