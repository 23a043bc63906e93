package impl

import (
	"io"
	"log/slog"
	"time"

	"bistro/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Cart: &config.CartConfig{
			TTL: 24 * time.Hour,
		},
		Orders: &config.OrdersConfig{
			EstimatedDelivery: 20 * time.Minute,
		},
	}

	return cfg
}
