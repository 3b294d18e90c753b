package patients

import (
	"context"
	"openwindows-service/internal/app/models"
)

// PatientStoreClient resolves the patient profile linked to a signed-in
// identity. A nil patient with a nil error means the identity has no linked
// profile, which is a valid state.
type PatientStoreClient interface {
	FindByIdentityID(ctx context.Context, accessToken, identityID string) (*models.Patient, error)
}
