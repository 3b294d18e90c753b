package carestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	restClientInstance RestClient
	onceRestClient     sync.Once
)

type restClient struct {
	BaseUrl    string
	AnonKey    string
	Log        *zap.Logger
	HTTPClient *http.Client
}

func NewRestClient(baseUrl, anonKey string, requestTimeoutInSeconds int, logger *zap.Logger) RestClient {
	onceRestClient.Do(func() {
		client := &restClient{
			BaseUrl: baseUrl + constvars.CareStoreRestPath,
			AnonKey: anonKey,
			Log:     logger,
			HTTPClient: &http.Client{
				Timeout: time.Duration(requestTimeoutInSeconds) * time.Second,
			},
		}
		restClientInstance = client
	})
	return restClientInstance
}

func (c *restClient) SelectRows(ctx context.Context, accessToken, collection string, query url.Values) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("restClient.SelectRows called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, collection),
	)

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, collection)
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("restClient.SelectRows error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setAuthHeaders(req, accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("restClient.SelectRows error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient.SelectRows error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreSelectRows(err, collection, collection)
	}

	if resp.StatusCode != constvars.StatusOK {
		rowsErr := fmt.Errorf("care store returned status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("restClient.SelectRows care store error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(rowsErr),
		)
		return nil, exceptions.ErrStoreSelectRows(rowsErr, collection, collection)
	}

	return bodyBytes, nil
}

func (c *restClient) InsertRow(ctx context.Context, accessToken, collection string, row interface{}) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("restClient.InsertRow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, collection),
	)

	requestJSON, err := json.Marshal(row)
	if err != nil {
		c.Log.Error("restClient.InsertRow error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, collection)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("restClient.InsertRow error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setAuthHeaders(req, accessToken)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderPrefer, constvars.PreferReturnRepresentation)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("restClient.InsertRow error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient.InsertRow error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreInsertRow(err, collection, collection)
	}

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		rowErr := fmt.Errorf("care store returned status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("restClient.InsertRow care store error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(rowErr),
		)
		return nil, exceptions.ErrStoreInsertRow(rowErr, collection, collection)
	}

	return bodyBytes, nil
}

func (c *restClient) setAuthHeaders(req *http.Request, accessToken string) {
	req.Header.Set(constvars.HeaderAPIKey, c.AnonKey)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+accessToken)
}
