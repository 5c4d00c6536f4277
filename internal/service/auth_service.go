package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/internal/repository/memory"
	"sales-crm-be/internal/repository/specification"
	"sales-crm-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}

type AuthConfig struct {
	JwtSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type authService struct {
	uowFactory      unitofwork.RepositoryFactory
	refreshTokens   *memory.RefreshTokenRepository
	activityService IActivityService
	sysLogger       logger.ILogger
	cfg             AuthConfig
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	refreshTokens *memory.RefreshTokenRepository,
	activityService IActivityService,
	sysLogger logger.ILogger,
	cfg AuthConfig,
) IAuthService {
	return &authService{
		uowFactory:      uowFactory,
		refreshTokens:   refreshTokens,
		activityService: activityService,
		sysLogger:       sysLogger,
		cfg:             cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := entity.UserRoleUser
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		EmployeeId:   req.EmployeeId,
		Region:       req.Region,
		Active:       true,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, user.Id, "user_registered", "user", user.Id, map[string]interface{}{
		"email": user.Email,
		"role":  string(user.Role),
	})

	return &dto.RegisterResponse{Id: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)
	accessToken, err := s.signAccessToken(user, expiresAt)
	if err != nil {
		return nil, err
	}

	refreshToken, err := randomToken()
	if err != nil {
		return nil, err
	}
	employeeId := ""
	if user.EmployeeId != nil {
		employeeId = user.EmployeeId.String()
	}
	s.refreshTokens.Save(&memory.RefreshSession{
		Token:      refreshToken,
		UserId:     user.Id,
		Role:       string(user.Role),
		EmployeeId: employeeId,
		ExpiresAt:  time.Now().Add(s.cfg.RefreshTokenTTL),
	})

	if err := uow.UserRepository().TouchLastLogin(ctx, user.Id); err != nil {
		s.sysLogger.Warn("auth", "failed to update last login", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User: dto.UserProfileResponse{
			Id:         user.Id,
			Email:      user.Email,
			FullName:   user.FullName,
			Role:       string(user.Role),
			EmployeeId: user.EmployeeId,
			Region:     user.Region,
			CreatedAt:  user.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	session, found := s.refreshTokens.Get(req.RefreshToken)
	if !found || time.Now().After(session.ExpiresAt) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid or expired refresh token")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: session.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		s.refreshTokens.Revoke(req.RefreshToken)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "account no longer active")
	}

	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)
	accessToken, err := s.signAccessToken(user, expiresAt)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	s.refreshTokens.Revoke(req.RefreshToken)
	return nil
}

func (s *authService) signAccessToken(user *entity.User, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.EmployeeId != nil {
		claims["employee_id"] = user.EmployeeId.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
