package careteams

import (
	"context"

	"openwindows-service/internal/app/models"
)

type CareTeamStoreClient interface {
	FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.CareTeamMember, error)
}

type CareTeamUsecase interface {
	ListCareTeam(ctx context.Context, session *models.Session) ([]models.CareTeamMember, error)
}
