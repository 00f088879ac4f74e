package grpc

import (
	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"github.com/rs/zerolog/log"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RefreshHealth reports SERVING for the whole server while the database answers pings.
func (v *App) RefreshHealth() {
	status := healthpb.HealthCheckResponse_SERVING
	if err := database.Ping(); err != nil {
		log.Warn().Err(err).Msg("Database is unreachable, reporting not serving...")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	v.health.SetServingStatus("", status)
}
