package dashboards

import (
	"context"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, session *models.Session) (*responses.Dashboard, error)
}
