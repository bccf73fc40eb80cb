package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/utils"
)

type MovementController struct {
	directoryService services.DirectoryServiceInterface
	logger           *zap.Logger
}

func NewMovementController(directoryService services.DirectoryServiceInterface, logger *zap.Logger) *MovementController {
	return &MovementController{
		directoryService: directoryService,
		logger:           logger,
	}
}

func (c *MovementController) GetMovements(ctx echo.Context) error {
	var filter dto.MovementFilterDTO
	if err := ctx.Bind(&filter); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверные параметры запроса", err, nil),
			c.logger)
	}

	res, err := c.directoryService.GetMovements(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetMovements: ошибка при получении журнала перемещений", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Журнал перемещений успешно получен", http.StatusOK)
}
