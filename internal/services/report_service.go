package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/repositories"
)

type ReportServiceInterface interface {
	BuildMovementsReport(ctx context.Context, filter dto.MovementFilterDTO) (*bytes.Buffer, error)
}

// ReportService выгружает журнал перемещений в xlsx для админ-API.
type ReportService struct {
	movementRepo repositories.MovementRepositoryInterface
	logger       *zap.Logger
}

func NewReportService(movementRepo repositories.MovementRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{
		movementRepo: movementRepo,
		logger:       logger,
	}
}

var movementReportHeaders = []string{"ID", "Equipment ID", "Equipment", "From", "To", "Date"}

func (s *ReportService) BuildMovementsReport(ctx context.Context, filter dto.MovementFilterDTO) (*bytes.Buffer, error) {
	movements, err := s.movementRepo.GetMovements(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Movements"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range movementReportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, m := range movements {
		row := i + 2
		values := []interface{}{
			m.ID,
			m.EquipmentID,
			m.EquipmentName,
			m.FromLocation.String(),
			m.ToLocation.String(),
			m.MovementDate.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("не удалось сформировать отчёт: %w", err)
	}

	s.logger.Info("Сформирован отчёт по перемещениям", zap.Int("rows", len(movements)))
	return buf, nil
}
