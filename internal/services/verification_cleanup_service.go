package services

import (
	"github.com/Hafizirfan96/spu-backend/internal/repositories"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// VerificationCleanupService purges expired email verification codes from
// the in-memory store. Scheduled periodically from main.
type VerificationCleanupService interface {
	Cleanup()
}

type verificationCleanupService struct {
	store repositories.VerificationCodeStore
}

func NewVerificationCleanupService(store repositories.VerificationCodeStore) VerificationCleanupService {
	return &verificationCleanupService{store: store}
}

func (s *verificationCleanupService) Cleanup() {
	if removed := s.store.SweepExpired(); removed > 0 {
		utils.Logger.WithField("removed", removed).Info("Swept expired verification codes")
	}
}
