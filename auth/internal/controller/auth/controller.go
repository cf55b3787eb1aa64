package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhishek622/moviereviews/internal/httputil"
)

//go:generate mockgen -source=controller.go -destination=mocks_test.go -package=auth

type authGateway interface {
	Login(ctx context.Context, email string, password string) (string, error)
	Register(ctx context.Context, email string, password string) error
}

type credentialStore interface {
	IsAuthenticated() bool
	SetCredential(token string)
	ClearCredential()
	Username() string
}

// Controller defines the account service controller: it exchanges
// credentials for a token and keeps it in the session.
type Controller struct {
	gateway authGateway
	session credentialStore
	logger  *zap.Logger
}

// New creates an account controller.
func New(gateway authGateway, session credentialStore, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{gateway, session, logger}
}

// Login authenticates and stores the returned token. A failed login leaves
// the current credential untouched.
func (c *Controller) Login(ctx context.Context, email string, password string) error {
	token, err := c.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	c.session.SetCredential(token)
	c.logger.Info("Logged in", zap.String("user", c.session.Username()))
	return nil
}

// Register creates an account. It does not log in.
func (c *Controller) Register(ctx context.Context, email string, password string) error {
	if err := c.gateway.Register(ctx, email, password); err != nil {
		return err
	}
	c.logger.Info("Registered account", zap.String("email", email))
	return nil
}

// Logout drops the stored credential.
func (c *Controller) Logout() {
	c.session.ClearCredential()
}

// WhoAmI returns the identity carried by the stored credential. It is empty
// for tokens that carry none.
func (c *Controller) WhoAmI() (string, error) {
	if !c.session.IsAuthenticated() {
		return "", httputil.ErrUnauthenticated
	}
	return c.session.Username(), nil
}
