package usecase

import (
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/services/auth"
)

// AuthUC drives the request, verify and token issuance flow
type AuthUC struct {
	authRepo   auth.AuthRepo
	notifierGW auth.NotifierGW
	cfg        *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	notifierGW auth.NotifierGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:   authRepo,
		notifierGW: notifierGW,
		cfg:        cfg,
	}
}
