package patients

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
	patientStoreClientInstance PatientStoreClient
	oncePatientStoreClient     sync.Once
)

type patientStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewPatientStoreClient(restClient carestore.RestClient, logger *zap.Logger) PatientStoreClient {
	oncePatientStoreClient.Do(func() {
		client := &patientStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		patientStoreClientInstance = client
	})
	return patientStoreClientInstance
}

type patientRow struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Diagnosis     string `json:"diagnosis"`
	CurrentStatus string `json:"current_status"`
}

func (c *patientStoreClient) FindByIdentityID(ctx context.Context, accessToken, identityID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientStoreClient.FindByIdentityID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	query := url.Values{}
	query.Set("user_id", "eq."+identityID)
	query.Set("limit", "1")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionPatients, query)
	if err != nil {
		return nil, err
	}

	var rows []patientRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("patientStoreClient.FindByIdentityID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionPatients, constvars.ResourceLabelProfile)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &models.Patient{
		ID:            row.ID,
		IdentityID:    row.UserID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		DateOfBirth:   row.DateOfBirth,
		Phone:         row.Phone,
		Address:       row.Address,
		Diagnosis:     row.Diagnosis,
		CurrentStatus: row.CurrentStatus,
	}, nil
}
