package services

import (
	"context"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/pkg/config"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/service"
	"equipment-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
}

// AuthService аутентифицирует единственную админскую учётную запись из
// конфигурации. Ролей и таблицы пользователей у админ-API нет.
type AuthService struct {
	admin  config.AdminConfig
	jwtSvc service.JWTService
	logger *zap.Logger
}

func NewAuthService(admin config.AdminConfig, jwtSvc service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		admin:  admin,
		jwtSvc: jwtSvc,
		logger: logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	if payload.Login != s.admin.Login || s.admin.PasswordHash == "" {
		s.logger.Warn("Попытка входа с неизвестным логином", zap.String("login", payload.Login))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(payload.Password, s.admin.PasswordHash) {
		s.logger.Warn("Неверный пароль администратора")
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(s.admin.Login)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(claims.Login)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
