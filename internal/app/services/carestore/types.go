package carestore

type TokenResult struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	ExpiresIn    int        `json:"expires_in"`
	RefreshToken string     `json:"refresh_token"`
	User         *StoreUser `json:"user,omitempty"`
}

type StoreUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// authErrorBody is the error shape the hosted identity endpoints return.
// Older deployments send error/error_description, newer ones send
// error_code/msg; both are kept so classification sees whichever arrived.
type authErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (b *authErrorBody) text() string {
	for _, s := range []string{b.ErrorCode, b.ErrorDescription, b.Msg, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}
