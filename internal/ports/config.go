package ports

import "airwave/internal/domain"

type ConfigService interface {
	Load() (domain.Config, error)
}
