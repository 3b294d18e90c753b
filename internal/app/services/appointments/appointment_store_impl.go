package appointments

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/app/services/carestore"
	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentStoreClientInstance AppointmentStoreClient
	onceAppointmentStoreClient     sync.Once
)

type appointmentStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewAppointmentStoreClient(restClient carestore.RestClient, logger *zap.Logger) AppointmentStoreClient {
	onceAppointmentStoreClient.Do(func() {
		client := &appointmentStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		appointmentStoreClientInstance = client
	})
	return appointmentStoreClientInstance
}

type appointmentRow struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patient_id"`
	Type               string    `json:"type"`
	CareTeamMemberID   string    `json:"care_team_member_id"`
	CareTeamMemberName string    `json:"care_team_member_name"`
	ScheduledAt        time.Time `json:"scheduled_at"`
	DurationMinutes    int       `json:"duration_minutes"`
	Location           string    `json:"location"`
	Notes              string    `json:"notes"`
	Confirmed          bool      `json:"confirmed"`
}

func (c *appointmentStoreClient) FindUpcomingByPatientID(ctx context.Context, accessToken, patientID string, after time.Time, limit int) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentStoreClient.FindUpcomingByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	query := url.Values{}
	query.Set("patient_id", "eq."+patientID)
	query.Set("scheduled_at", "gte."+after.UTC().Format(time.RFC3339))
	query.Set("order", "scheduled_at.asc")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionAppointments, query)
	if err != nil {
		return nil, err
	}

	var rows []appointmentRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("appointmentStoreClient.FindUpcomingByPatientID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionAppointments, constvars.ResourceLabelAppointments)
	}

	appointments := make([]models.Appointment, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, models.Appointment{
			ID:                 row.ID,
			PatientID:          row.PatientID,
			Type:               row.Type,
			CareTeamMemberID:   row.CareTeamMemberID,
			CareTeamMemberName: row.CareTeamMemberName,
			ScheduledAt:        row.ScheduledAt,
			DurationMinutes:    row.DurationMinutes,
			Location:           row.Location,
			Notes:              row.Notes,
			Confirmed:          row.Confirmed,
		})
	}
	return appointments, nil
}
