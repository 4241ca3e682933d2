package bootstrap

import (
	"signup-engine/internal/domain/session"
	"signup-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCalendar,
	),
)

// NewCalendar fixes the zone in which activity dates end.
func NewCalendar(cfg config.Config) (*session.Calendar, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return session.NewCalendar(loc), nil
}
