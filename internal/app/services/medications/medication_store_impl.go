package medications

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
	medicationStoreClientInstance MedicationStoreClient
	onceMedicationStoreClient     sync.Once
)

type medicationStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewMedicationStoreClient(restClient carestore.RestClient, logger *zap.Logger) MedicationStoreClient {
	onceMedicationStoreClient.Do(func() {
		client := &medicationStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		medicationStoreClientInstance = client
	})
	return medicationStoreClientInstance
}

type medicationRow struct {
	ID               string   `json:"id"`
	PatientID        string   `json:"patient_id"`
	Name             string   `json:"name"`
	GenericName      string   `json:"generic_name"`
	Dosage           string   `json:"dosage"`
	Unit             string   `json:"unit"`
	Frequency        string   `json:"frequency"`
	Route            string   `json:"route"`
	Purpose          string   `json:"purpose"`
	SideEffects      []string `json:"side_effects"`
	Prescriber       string   `json:"prescriber"`
	Status           string   `json:"status"`
	DeliveryDate     string   `json:"delivery_date"`
	ExpectedDelivery string   `json:"expected_delivery"`
	DeliveredBy      string   `json:"delivered_by"`
}

func (c *medicationStoreClient) FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationStoreClient.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	query := url.Values{}
	query.Set("patient_id", "eq."+patientID)
	query.Set("order", "name.asc")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionMedications, query)
	if err != nil {
		return nil, err
	}

	var rows []medicationRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("medicationStoreClient.FindByPatientID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionMedications, constvars.ResourceLabelMedications)
	}

	medications := make([]models.Medication, 0, len(rows))
	for _, row := range rows {
		medications = append(medications, models.Medication{
			ID:               row.ID,
			PatientID:        row.PatientID,
			Name:             row.Name,
			GenericName:      row.GenericName,
			Dosage:           row.Dosage,
			Unit:             row.Unit,
			Frequency:        row.Frequency,
			Route:            row.Route,
			Purpose:          row.Purpose,
			SideEffects:      row.SideEffects,
			Prescriber:       row.Prescriber,
			Status:           row.Status,
			DeliveryDate:     row.DeliveryDate,
			ExpectedDelivery: row.ExpectedDelivery,
			DeliveredBy:      row.DeliveredBy,
		})
	}
	return medications, nil
}
