package messages

import (
	"context"
	"net/url"
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
	messageStoreClientInstance MessageStoreClient
	onceMessageStoreClient     sync.Once
)

type messageStoreClient struct {
	RestClient carestore.RestClient
	Log        *zap.Logger
}

func NewMessageStoreClient(restClient carestore.RestClient, logger *zap.Logger) MessageStoreClient {
	onceMessageStoreClient.Do(func() {
		client := &messageStoreClient{
			RestClient: restClient,
			Log:        logger,
		}
		messageStoreClientInstance = client
	})
	return messageStoreClientInstance
}

type messageRow struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patient_id"`
	SenderName    string     `json:"sender_name"`
	SenderRole    *string    `json:"sender_role"`
	IsFromPatient bool       `json:"is_from_patient"`
	Text          string     `json:"text"`
	SentAt        time.Time  `json:"sent_at"`
	ReadAt        *time.Time `json:"read_at"`
}

type messageInsertRow struct {
	PatientID     string  `json:"patient_id"`
	SenderName    string  `json:"sender_name"`
	SenderRole    *string `json:"sender_role"`
	IsFromPatient bool    `json:"is_from_patient"`
	Text          string  `json:"text"`
}

// FindByPatientID returns the thread oldest-first; the store orders rows so
// ordering survives pagination if it is ever added.
func (c *messageStoreClient) FindByPatientID(ctx context.Context, accessToken, patientID string) ([]models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("messageStoreClient.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	query := url.Values{}
	query.Set("patient_id", "eq."+patientID)
	query.Set("order", "sent_at.asc")

	bodyBytes, err := c.RestClient.SelectRows(ctx, accessToken, constvars.CollectionMessages, query)
	if err != nil {
		return nil, err
	}

	var rows []messageRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("messageStoreClient.FindByPatientID error decoding rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeRows(err, constvars.CollectionMessages, constvars.ResourceLabelMessages)
	}

	messages := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, models.Message(row))
	}
	return messages, nil
}

func (c *messageStoreClient) InsertMessage(ctx context.Context, accessToken string, message *models.Message) (*models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("messageStoreClient.InsertMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, message.PatientID),
	)

	insertRow := messageInsertRow{
		PatientID:     message.PatientID,
		SenderName:    message.SenderName,
		SenderRole:    message.SenderRole,
		IsFromPatient: message.IsFromPatient,
		Text:          message.Text,
	}

	bodyBytes, err := c.RestClient.InsertRow(ctx, accessToken, constvars.CollectionMessages, insertRow)
	if err != nil {
		return nil, exceptions.ErrSendMessage(err)
	}

	// The store answers with the inserted row wrapped in an array; id and
	// sent_at come back filled by the server.
	var rows []messageRow
	if err := json.Unmarshal(bodyBytes, &rows); err != nil {
		c.Log.Error("messageStoreClient.InsertMessage error decoding inserted row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendMessage(err)
	}
	if len(rows) == 0 {
		return nil, exceptions.ErrSendMessage(nil)
	}

	inserted := models.Message(rows[0])
	return &inserted, nil
}
