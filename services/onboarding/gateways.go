package onboarding

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fastbuka/rider/services/onboarding OnboardingGW,MediaUploader

// OnboardingGW defines the registration endpoints
type OnboardingGW interface {
	Register(ctx context.Context, app models.RiderApplication) (*models.RegistrationResult, error)
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error
}

// MediaUploader stores a local image and returns its permanent reference
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
