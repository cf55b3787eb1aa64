package testutil

import "github.com/abhishek622/moviereviews/auth/pkg/session"

// NewTestSession creates an in-memory session to be used in tests. An empty
// token yields a logged out session.
func NewTestSession(token string) *session.Session {
	return session.NewInMemory(token)
}
