package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
	"github.com/jhoicas/menuqr-api/pkg/jwt"
	"github.com/jhoicas/menuqr-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredentials credenciales del administrador de la plataforma (desde configuración).
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// AuthUseCase login de administrador y de negocios.
type AuthUseCase struct {
	businessRepo repository.BusinessRepository
	admin        AdminCredentials
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(businessRepo repository.BusinessRepository, admin AdminCredentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{businessRepo: businessRepo, admin: admin, jwtCfg: jwtCfg}
}

// AdminLogin valida contra las credenciales configuradas. Sin admin configurado nadie entra.
func (uc *AuthUseCase) AdminLogin(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.admin.Email == "" || !strings.EqualFold(strings.TrimSpace(in.Email), uc.admin.Email) {
		return nil, domain.ErrUnauthorized
	}
	if !password.Compare(in.Password, uc.admin.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Email, "", entity.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: entity.RoleAdmin}, nil
}

// BusinessLogin verifica email/password del negocio. Un negocio inactivo recibe ErrForbidden.
func (uc *AuthUseCase) BusinessLogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	b, err := uc.businessRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if b == nil || !password.Compare(in.Password, b.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if !b.Status {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, b.ID, b.ID, entity.RoleBusiness, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: entity.RoleBusiness, BusinessID: b.ID}, nil
}
