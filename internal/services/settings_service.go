package services

import (
	"errors"
	"fmt"
	"restaurant_menu/internal/redis"
)

// SettingsStore is the slice of the Redis client the settings service
// uses. A missing key must surface as redis.ErrNotFound.
type SettingsStore interface {
	SetSettings(name string, value interface{}) error
	GetSettings(name string, dest interface{}) error
}

type RestaurantInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type SystemSettings struct {
	Currency        string `json:"currency"`
	Timezone        string `json:"timezone"`
	Language        string `json:"language"`
	Notifications   bool   `json:"notifications"`
	AutoBackup      bool   `json:"auto_backup"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

type SecuritySettings struct {
	SessionTimeout   int  `json:"session_timeout"`
	MaxLoginAttempts int  `json:"max_login_attempts"`
	TwoFactorAuth    bool `json:"two_factor_auth"`
	PasswordExpiry   bool `json:"password_expiry"`
}

// SettingsService persists the admin settings pages so acknowledged
// values are observably applied (the dashboard reads the timezone back).
type SettingsService interface {
	GetRestaurantInfo() (*RestaurantInfo, error)
	UpdateRestaurantInfo(info *RestaurantInfo) error
	GetSystemSettings() (*SystemSettings, error)
	UpdateSystemSettings(settings *SystemSettings) error
	GetSecuritySettings() (*SecuritySettings, error)
	UpdateSecuritySettings(settings *SecuritySettings) error
}

type settingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) SettingsService {
	return &settingsService{store: store}
}

const (
	settingsRestaurantInfo = "restaurant_info"
	settingsSystem         = "system"
	settingsSecurity       = "security"
)

func (s *settingsService) GetRestaurantInfo() (*RestaurantInfo, error) {
	var info RestaurantInfo
	err := s.store.GetSettings(settingsRestaurantInfo, &info)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return &RestaurantInfo{}, nil
		}
		return nil, fmt.Errorf("%w: reading restaurant info: %v", ErrPersistence, err)
	}
	return &info, nil
}

func (s *settingsService) UpdateRestaurantInfo(info *RestaurantInfo) error {
	if info.Name == "" {
		return fmt.Errorf("%w: restaurant name is required", ErrValidation)
	}
	if err := s.store.SetSettings(settingsRestaurantInfo, info); err != nil {
		return fmt.Errorf("%w: saving restaurant info: %v", ErrPersistence, err)
	}
	return nil
}

func (s *settingsService) GetSystemSettings() (*SystemSettings, error) {
	var settings SystemSettings
	err := s.store.GetSettings(settingsSystem, &settings)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return defaultSystemSettings(), nil
		}
		return nil, fmt.Errorf("%w: reading system settings: %v", ErrPersistence, err)
	}
	return &settings, nil
}

func (s *settingsService) UpdateSystemSettings(settings *SystemSettings) error {
	if err := s.store.SetSettings(settingsSystem, settings); err != nil {
		return fmt.Errorf("%w: saving system settings: %v", ErrPersistence, err)
	}
	return nil
}

func (s *settingsService) GetSecuritySettings() (*SecuritySettings, error) {
	var settings SecuritySettings
	err := s.store.GetSettings(settingsSecurity, &settings)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return defaultSecuritySettings(), nil
		}
		return nil, fmt.Errorf("%w: reading security settings: %v", ErrPersistence, err)
	}
	return &settings, nil
}

func (s *settingsService) UpdateSecuritySettings(settings *SecuritySettings) error {
	if settings.SessionTimeout <= 0 {
		return fmt.Errorf("%w: session timeout must be positive", ErrValidation)
	}
	if err := s.store.SetSettings(settingsSecurity, settings); err != nil {
		return fmt.Errorf("%w: saving security settings: %v", ErrPersistence, err)
	}
	return nil
}

func defaultSystemSettings() *SystemSettings {
	return &SystemSettings{
		Currency: "USD",
		Language: "en",
	}
}

func defaultSecuritySettings() *SecuritySettings {
	return &SecuritySettings{
		SessionTimeout:   3600,
		MaxLoginAttempts: 5,
	}
}
