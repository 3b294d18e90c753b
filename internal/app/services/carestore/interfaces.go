package carestore

import (
	"context"
	"net/url"
)

// RestClient reads and writes rows through the care store's row API. Every
// call carries the signed-in identity's access token so the store can apply
// its own row-level access rules.
type RestClient interface {
	SelectRows(ctx context.Context, accessToken, collection string, query url.Values) ([]byte, error)
	InsertRow(ctx context.Context, accessToken, collection string, row interface{}) ([]byte, error)
}

// AuthClient covers the care store's hosted identity endpoints.
type AuthClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (*TokenResult, error)
	GetUser(ctx context.Context, accessToken string) (*StoreUser, error)
	SignOut(ctx context.Context, accessToken string) error
}
