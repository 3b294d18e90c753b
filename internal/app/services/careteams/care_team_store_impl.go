package careteams

import (
	"context"
	"net/url"
	"sync"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/carestore"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	careTeamStoreClientInstance CareTeamStoreClient
	onceCareTeamStoreClient     sync.Once
)

type careTeamStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewCareTeamStoreClient(restClient carestore.RestClient, logger *zap.Logger) CareTeamStoreClient {
	onceCareTeamStoreClient.Do(func() {
		client := &careTeamStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		careTeamStoreClientInstance = client
	})
	return careTeamStoreClientInstance
}

type careTeamMemberRow struct {
	ID            string `json:"id"`
	PatientID     string `json:"patient_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	RoleLabel     string `json:"role_label"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Bio           string `json:"bio"`
	VisitSchedule string `json:"visit_schedule"`
	PhotoObject   string `json:"photo_object"`
}

func (c *careTeamStoreClient) FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.CareTeamMember, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("careTeamStoreClient.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	query := url.Values{}
	query.Set("patient_id", "eq."+patientID)
	query.Set("order", "name.asc")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionCareTeam, query)
	if err != nil {
		return nil, err
	}

	var rows []careTeamMemberRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("careTeamStoreClient.FindByPatientID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionCareTeam, constvars.ResourceLabelCareTeam)
	}

	members := make([]models.CareTeamMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, models.CareTeamMember{
			ID:            row.ID,
			Name:          row.Name,
			Role:          row.Role,
			RoleLabel:     row.RoleLabel,
			Phone:         row.Phone,
			Email:         row.Email,
			Bio:           row.Bio,
			VisitSchedule: row.VisitSchedule,
			PhotoObject:   row.PhotoObject,
		})
	}
	return members, nil
}
