package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/utils"
)

type EquipmentController struct {
	equipmentService  services.EquipmentServiceInterface
	directoryService  services.DirectoryServiceInterface
	transitionService services.TransitionServiceInterface
	logger            *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	directoryService services.DirectoryServiceInterface,
	transitionService services.TransitionServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService:  equipmentService,
		directoryService:  directoryService,
		transitionService: transitionService,
		logger:            logger,
	}
}

func (c *EquipmentController) parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID оборудования", err,
			map[string]interface{}{"param": ctx.Param("id")})
	}
	return id, nil
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	res, err := c.directoryService.GetEquipment(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEquipment: ошибка при получении списка оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список оборудования успешно получен", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.directoryService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно найдено", http.StatusOK)
}

// FindResponsible возвращает ответственного сотрудника. Для оборудования без
// ответственного — пустое тело с пометкой, это не ошибка.
func (c *EquipmentController) FindResponsible(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	employee, err := c.directoryService.ResponsibleFor(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if employee == nil {
		return utils.SuccessResponse(ctx, nil, "Ответственный не назначен", http.StatusOK)
	}

	return utils.SuccessResponse(ctx, employee, "Ответственный успешно найден", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно создано", http.StatusCreated)
}

// Relocate — админский вход в Transition Engine, тот же путь, что и у бота.
func (c *EquipmentController) Relocate(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RelocateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	movement, err := c.transitionService.Relocate(ctx.Request().Context(), id, constants.Location(payload.Location))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, movement, "Оборудование успешно перемещено", http.StatusOK)
}

func (c *EquipmentController) ChangeStatus(ctx echo.Context) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ChangeStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.transitionService.ChangeStatus(ctx.Request().Context(), id, constants.Status(payload.Status)); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Статус оборудования успешно обновлён", http.StatusOK)
}
