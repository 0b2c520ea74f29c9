package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-records/internal/config"
	"github.com/MKhiriev/go-user-records/internal/crypto"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/store"
	"github.com/MKhiriev/go-user-records/internal/validators"
	"github.com/MKhiriev/go-user-records/models"
)

type Services struct {
	UserService    UserService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, validators.NewUserValidator(), hasher, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
