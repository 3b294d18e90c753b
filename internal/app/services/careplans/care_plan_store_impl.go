package careplans

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
	carePlanStoreClientInstance CarePlanStoreClient
	onceCarePlanStoreClient     sync.Once
)

type carePlanStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewCarePlanStoreClient(restClient carestore.RestClient, logger *zap.Logger) CarePlanStoreClient {
	onceCarePlanStoreClient.Do(func() {
		client := &carePlanStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		carePlanStoreClientInstance = client
	})
	return carePlanStoreClientInstance
}

type carePlanRow struct {
	ID                   string `json:"id"`
	PatientID            string `json:"patient_id"`
	Status               string `json:"status"`
	LastUpdated          string `json:"last_updated"`
	LastUpdatedBy        string `json:"last_updated_by"`
	AdvanceDirective     string `json:"advance_directive"`
	DirectiveSignedDate  string `json:"directive_signed_date"`
	HealthcareProxyName  string `json:"healthcare_proxy_name"`
	HealthcareProxyPhone string `json:"healthcare_proxy_phone"`
}

type carePlanGoalRow struct {
	ID         string `json:"id"`
	CarePlanID string `json:"care_plan_id"`
	Goal       string `json:"goal"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
	Notes      string `json:"notes"`
}

func (c *carePlanStoreClient) FindByPatientID(ctx context.Context, accessToken, patientID string) (*models.CarePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("carePlanStoreClient.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	query := url.Values{}
	query.Set("patient_id", "eq."+patientID)
	query.Set("limit", "1")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionCarePlans, query)
	if err != nil {
		return nil, err
	}

	var rows []carePlanRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("carePlanStoreClient.FindByPatientID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionCarePlans, constvars.ResourceLabelCarePlan)
	}

	if len(rows) == 0 {
		return nil, exceptions.ErrStoreRowNotFound(nil, constvars.CollectionCarePlans, constvars.ResourceLabelCarePlan)
	}

	row := rows[0]
	carePlan := &models.CarePlan{
		ID:            row.ID,
		PatientID:     row.PatientID,
		Status:        row.Status,
		LastUpdated:   row.LastUpdated,
		LastUpdatedBy: row.LastUpdatedBy,
	}
	if row.AdvanceDirective != "" {
		carePlan.AdvanceDirective = &models.AdvanceDirective{
			Text:                 row.AdvanceDirective,
			SignedDate:           row.DirectiveSignedDate,
			HealthcareProxyName:  row.HealthcareProxyName,
			HealthcareProxyPhone: row.HealthcareProxyPhone,
		}
	}
	return carePlan, nil
}

func (c *carePlanStoreClient) FindGoalsByCarePlanID(ctx context.Context, accessToken, carePlanID string) ([]models.CarePlanGoal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("carePlanStoreClient.FindGoalsByCarePlanID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set("care_plan_id", "eq."+carePlanID)
	query.Set("order", "goal.asc")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionCareGoals, query)
	if err != nil {
		return nil, err
	}

	var rows []carePlanGoalRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("carePlanStoreClient.FindGoalsByCarePlanID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionCareGoals, constvars.ResourceLabelCarePlan)
	}

	goals := make([]models.CarePlanGoal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, models.CarePlanGoal{
			ID:       row.ID,
			Goal:     row.Goal,
			Category: row.Category,
			Status:   row.Status,
			Progress: row.Progress,
			Notes:    row.Notes,
		})
	}
	return goals, nil
}
