package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"taskbox/config"
	"taskbox/infras/jwt"
	"taskbox/infras/otel"
	"taskbox/internal/domains/auth/model/dto"
	userModel "taskbox/internal/domains/user/model"
	userRepo "taskbox/internal/domains/user/repository"
	"taskbox/shared"
	"taskbox/shared/constant"
	gDto "taskbox/shared/dto"
	"taskbox/shared/failure"
	"taskbox/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = password.ValidatePolicy(req.Password); err != nil {
		return res, err
	}

	email := shared.NormalizeEmail(req.Email)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("Email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(email, hashedPassword)

	id, err := s.userRepo.InsertReturning(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := shared.NormalizeEmail(req.Email)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("email", email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("Incorrect email or password")
	}

	if err := password.Verify(req.Password, user.HashedPassword); err != nil {
		log.Warn().Str("email", email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("Incorrect email or password")
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")

		return res, fmt.Errorf("failed to generate access token: %w", err)
	}

	res.FromAccessToken(accessToken)

	return res, nil
}
