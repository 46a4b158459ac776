package services

import (
	"context"
	"fmt"

	"github.com/Hafizirfan96/spu-backend/internal/config"
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// RateLimiterService guards outbound verification email against abuse.
type RateLimiterService interface {
	CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error
}

type rateLimiterService struct {
	repo repositories.RateLimitRepository
	cfg  *config.Config
}

func NewRateLimiterService(repo repositories.RateLimitRepository, cfg *config.Config) RateLimiterService {
	return &rateLimiterService{repo: repo, cfg: cfg}
}

// CheckEmailRateLimits checks global, per-IP, and per-email limits for
// verification email requests.
func (s *rateLimiterService) CheckEmailRateLimits(ctx context.Context, ip, emailAddress string) error {
	// 1. Global limit
	globalKey := "email:global"
	allowed, err := s.repo.IncrementAndCheck(ctx, globalKey, s.cfg.GlobalEmailLimitPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Global email rate limit exceeded (key: %s)", globalKey)
		return utils.ErrRateLimitExceeded
	}

	// 2. Per-IP limit
	ipKey := fmt.Sprintf("email:ip:%s", ip)
	allowed, err = s.repo.IncrementAndCheck(ctx, ipKey, s.cfg.EmailLimitPerIPPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Per-IP email rate limit exceeded (key: %s)", ipKey)
		return utils.ErrRateLimitExceeded
	}

	// 3. Per-destination limit
	emailKey := fmt.Sprintf("email:address:%s", emailAddress)
	allowed, err = s.repo.IncrementAndCheck(ctx, emailKey, s.cfg.EmailLimitPerEmailPerHour, s.cfg.RateLimitWindow)
	if err != nil {
		return err
	}
	if !allowed {
		utils.Logger.Warnf("Per-email rate limit exceeded (key: %s)", emailKey)
		return utils.ErrRateLimitExceeded
	}

	return nil
}
