package auth

import (
	"context"

	"openwindows-service/internal/pkg/dto/requests"
	"openwindows-service/internal/pkg/dto/responses"
)

// SessionListener receives the session state published after every login,
// restore, and logout. Listeners run on the caller's goroutine and must not
// block.
type SessionListener func(session *responses.Session)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	RestoreSession(ctx context.Context, sessionID string) (*responses.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Subscribe(listener SessionListener) (unsubscribe func())
}
