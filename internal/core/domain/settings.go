package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type (
	Settings struct {
		Business      BusinessProfile
		Notifications NotificationSettings
		Appearance    AppearanceSettings
	}

	BusinessProfile struct {
		Name    string
		Address string
		Phone   string
		Email   string
		TaxID   string
	}

	NotificationSettings struct {
		LowStock bool
		Sales    bool
		Email    bool
	}

	AppearanceSettings struct {
		Theme       Theme
		CompactView bool
	}
)

func DefaultSettings() Settings {
	return Settings{
		Business: BusinessProfile{
			Name:    "Mi Negocio",
			Address: "Calle Principal 123",
			Phone:   "+52 123 456 7890",
			Email:   "contacto@minegocio.com",
			TaxID:   "RFC123456789",
		},
		Notifications: NotificationSettings{
			LowStock: true,
			Sales:    true,
			Email:    false,
		},
		Appearance: AppearanceSettings{
			Theme:       ThemeSystem,
			CompactView: false,
		},
	}
}

func (s Settings) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Business.Name) == "" {
		errs = append(errs, errors.New("business name is required"))
	}
	if s.Business.Email != "" {
		if _, err := mail.ParseAddress(s.Business.Email); err != nil {
			errs = append(errs, fmt.Errorf("business email: %w", err))
		}
	}
	switch s.Appearance.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		errs = append(errs, fmt.Errorf("unknown theme %q", s.Appearance.Theme))
	}

	if len(errs) != 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}
