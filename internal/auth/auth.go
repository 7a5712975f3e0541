package auth

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"webiecellar/internal/structs"
	"webiecellar/pkg/config"
	"webiecellar/pkg/logger"
	"webiecellar/pkg/redis"
	"webiecellar/pkg/utils"
)

var Module = fx.Provide(New)

const sessionKeyPrefix = "session."

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
		Redis  redis.Client
	}

	// Service authenticates the storefront's single demo member and keeps
	// session state in redis, keyed by the token's jti.
	Service interface {
		Login(ctx context.Context, req structs.LoginRequest) (structs.AuthResponse, error)
		Me(ctx context.Context, token string) (structs.Member, error)
		Logout(ctx context.Context, token string) error
	}

	service struct {
		logger       logger.Logger
		redis        redis.Client
		secret       string
		sessionTTL   time.Duration
		member       structs.Member
		passwordHash string
	}
)

func New(p Params) (Service, error) {
	hash, err := utils.HashPassword(p.Config.GetString("auth.password"))
	if err != nil {
		return nil, err
	}

	return &service{
		logger:     p.Logger,
		redis:      p.Redis,
		secret:     p.Config.GetString("auth.secret"),
		sessionTTL: p.Config.GetDuration("session.ttl"),
		member: structs.Member{
			Name:  "Mr. Webie",
			Email: p.Config.GetString("auth.email"),
		},
		passwordHash: hash,
	}, nil
}

func (s *service) Login(ctx context.Context, req structs.LoginRequest) (structs.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email != strings.ToLower(s.member.Email) || !utils.CompareInBcrypt(s.passwordHash, req.Password) {
		return structs.AuthResponse{}, structs.ErrUnauthorized
	}

	token, jti, err := utils.GenerateSessionToken(s.secret, s.member.Email, s.sessionTTL)
	if err != nil {
		s.logger.Error(ctx, "err on utils.GenerateSessionToken", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	if err := s.redis.SaveObj(ctx, sessionKeyPrefix+jti, s.member, s.sessionTTL); err != nil {
		s.logger.Error(ctx, "err on redis.SaveObj", zap.Error(err))
		return structs.AuthResponse{}, err
	}

	return structs.AuthResponse{Token: token, Member: s.member}, nil
}

func (s *service) Me(ctx context.Context, token string) (structs.Member, error) {
	jti, err := s.sessionKey(token)
	if err != nil {
		return structs.Member{}, structs.ErrUnauthorized
	}

	var member structs.Member
	if err := s.redis.FindObj(ctx, sessionKeyPrefix+jti, &member); err != nil {
		return structs.Member{}, structs.ErrUnauthorized
	}
	return member, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	jti, err := s.sessionKey(token)
	if err != nil {
		return structs.ErrUnauthorized
	}

	if err := s.redis.Delete(ctx, sessionKeyPrefix+jti); err != nil {
		s.logger.Error(ctx, "err on redis.Delete", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) sessionKey(token string) (string, error) {
	claims, err := utils.ParseSessionToken(s.secret, token)
	if err != nil {
		return "", err
	}

	jti := cast.ToString(claims["jti"])
	if jti == "" {
		return "", structs.ErrUnauthorized
	}
	return jti, nil
}
