package carestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authClientInstance AuthClient
	onceAuthClient     sync.Once
)

type authClient struct {
	BaseUrl    string
	AnonKey    string
	Log        *zap.Logger
	HTTPClient *http.Client
}

func NewAuthClient(baseUrl, anonKey string, requestTimeoutInSeconds int, logger *zap.Logger) AuthClient {
	onceAuthClient.Do(func() {
		client := &authClient{
			BaseUrl: baseUrl + constvars.CareStoreAuthPath,
			AnonKey: anonKey,
			Log:     logger,
			HTTPClient: &http.Client{
				Timeout: time.Duration(requestTimeoutInSeconds) * time.Second,
			},
		}
		authClientInstance = client
	})
	return authClientInstance
}

func (c *authClient) SignInWithPassword(ctx context.Context, email, password string) (*TokenResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.SignInWithPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/token?%s", c.BaseUrl, url.Values{"grant_type": {"password"}}.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, strings.NewReader(string(requestJSON)))
	if err != nil {
		c.Log.Error("authClient.SignInWithPassword error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAPIKey, c.AnonKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("authClient.SignInWithPassword error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAuthUnknown(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("authClient.SignInWithPassword error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAuthUnknown(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		errorBody := new(authErrorBody)
		// Decode failures fall through to the unknown classification with
		// whatever raw text the store sent.
		json.Unmarshal(bodyBytes, errorBody)
		classified := ClassifySignInFailure(resp.StatusCode, errorBody.text())
		c.Log.Warn("authClient.SignInWithPassword sign-in rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingAuthStateKey, errorBody.text()),
		)
		return nil, classified
	}

	tokenResult := new(TokenResult)
	if err := json.Unmarshal(bodyBytes, tokenResult); err != nil {
		c.Log.Error("authClient.SignInWithPassword error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAuthUnknown(err)
	}
	return tokenResult, nil
}

func (c *authClient) GetUser(ctx context.Context, accessToken string) (*StoreUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s/user", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAPIKey, c.AnonKey)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("authClient.GetUser error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		userErr := fmt.Errorf("care store returned status %d", resp.StatusCode)
		c.Log.Warn("authClient.GetUser token rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(userErr)
	}

	storeUser := new(StoreUser)
	if err := json.NewDecoder(resp.Body).Decode(storeUser); err != nil {
		c.Log.Error("authClient.GetUser error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return storeUser, nil
}

func (c *authClient) SignOut(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.SignOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s/logout", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAPIKey, c.AnonKey)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("authClient.SignOut error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusNoContent && resp.StatusCode != constvars.StatusOK {
		signOutErr := fmt.Errorf("care store returned status %d", resp.StatusCode)
		c.Log.Warn("authClient.SignOut sign-out rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.WrapWithError(signOutErr, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSignOut)
	}
	return nil
}
