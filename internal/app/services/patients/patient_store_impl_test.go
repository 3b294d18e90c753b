package patients

import (
	"context"
	"net/url"
	"testing"

	"openwindows-service/internal/pkg/constvars"
	"openwindows-service/internal/pkg/exceptions"
	"openwindows-service/internal/pkg/fixtures"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRestClient struct {
	selectBody []byte
	selectErr  error

	gotCollection string
	gotQuery      url.Values
}

func (f *fakeRestClient) SelectRows(ctx context.Context, accessToken, collection string, query url.Values) ([]byte, error) {
	f.gotCollection = collection
	f.gotQuery = query
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.selectBody, nil
}

func (f *fakeRestClient) InsertRow(ctx context.Context, accessToken, collection string, row interface{}) ([]byte, error) {
	return nil, nil
}

func TestPatientStoreClientFindByIdentityID(t *testing.T) {
	t.Run("matching row is mapped onto the patient model", func(t *testing.T) {
		body, err := json.Marshal([]fixtures.PatientRow{fixtures.Patient()})
		require.NoError(t, err)
		restClient := &fakeRestClient{selectBody: body}
		client := &patientStoreClient{RestClient: restClient, Log: zap.NewNop()}

		patient, err := client.FindByIdentityID(context.Background(), fixtures.AccessToken, fixtures.IdentityID)

		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, fixtures.PatientID, patient.ID)
		assert.Equal(t, fixtures.IdentityID, patient.IdentityID)
		assert.Equal(t, "Margaret Chen", patient.FullName())

		assert.Equal(t, constvars.CollectionPatients, restClient.gotCollection)
		assert.Equal(t, "eq."+fixtures.IdentityID, restClient.gotQuery.Get("user_id"))
		assert.Equal(t, "1", restClient.gotQuery.Get("limit"))
	})

	t.Run("no matching row means no profile, not an error", func(t *testing.T) {
		client := &patientStoreClient{RestClient: &fakeRestClient{selectBody: []byte("[]")}, Log: zap.NewNop()}

		patient, err := client.FindByIdentityID(context.Background(), fixtures.AccessToken, "someone-else")

		require.NoError(t, err)
		assert.Nil(t, patient)
	})

	t.Run("select failure passes through", func(t *testing.T) {
		selectErr := exceptions.ErrStoreSelectRows(nil, constvars.CollectionPatients, constvars.ResourceLabelProfile)
		client := &patientStoreClient{RestClient: &fakeRestClient{selectErr: selectErr}, Log: zap.NewNop()}

		_, err := client.FindByIdentityID(context.Background(), fixtures.AccessToken, fixtures.IdentityID)
		assert.Error(t, err)
	})

	t.Run("malformed body surfaces a decode error", func(t *testing.T) {
		client := &patientStoreClient{RestClient: &fakeRestClient{selectBody: []byte("{not json")}, Log: zap.NewNop()}

		_, err := client.FindByIdentityID(context.Background(), fixtures.AccessToken, fixtures.IdentityID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}
