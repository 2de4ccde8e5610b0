package usecase

import (
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/onboarding/rules"
	"github.com/fastbuka/rider/services/sandbox"
)

// NearbyRadiusKm bounds how far an order may be from the rider
const NearbyRadiusKm = 8.0

type SandboxUC struct {
	sandboxRepo sandbox.SandboxRepo
	cfg         models.JWTConfig
	validator   *rules.Validator

	now     func() time.Time
	newCode func() string
}

// NewSandboxUC creates a new sandbox usecase instance
func NewSandboxUC(sandboxRepo sandbox.SandboxRepo, cfg models.JWTConfig) *SandboxUC {
	return &SandboxUC{
		sandboxRepo: sandboxRepo,
		cfg:         cfg,
		validator:   rules.NewValidator(),
		now:         models.Now,
		newCode:     verificationCode,
	}
}
