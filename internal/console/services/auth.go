package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"traveldesk/internal/console/api"
	"traveldesk/internal/console/models"
	"traveldesk/internal/console/normalize"
	"traveldesk/internal/logging"
)

// sessionTTL bounds how long a persisted session survives between runs.
const sessionTTL = 24 * time.Hour

// AuthService owns the operator session. Login checks credentials against
// the users collection (the store is also the account directory), and the
// session is persisted to the state file as a signed token so a restarted
// console stays logged in.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context)
	Session() (models.Session, bool)
	Restore(ctx context.Context)
}

type authService struct {
	store     api.Store
	norm      *normalize.Normalizer
	log       logging.Logger
	stateFile string
	secret    []byte

	session *models.Session
}

func NewAuthService(store api.Store, norm *normalize.Normalizer, log logging.Logger, stateFile string, secret []byte) AuthService {
	return &authService{store: store, norm: norm, log: log, stateFile: stateFile, secret: secret}
}

// Login fetches the account by email and applies the fixed per-role
// password scheme. This is the deliberately fake credential check the
// console was built with; it is not an authentication protocol.
func (s *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	payloads, err := s.store.Query(ctx, accountsEntity, "email", email)
	if err != nil {
		return models.Session{}, fmt.Errorf("looking up account: %w", err)
	}
	if len(payloads) == 0 {
		return models.Session{}, ErrInvalidCredentials
	}

	acct := s.norm.Account(ctx, payloads[0])

	expected := "viewer123"
	if acct.Role == models.RoleAdmin {
		expected = "admin123"
	}
	if password != expected {
		return models.Session{}, ErrInvalidCredentials
	}
	if acct.Status != models.StatusActive {
		return models.Session{}, ErrInactiveAccount
	}

	session := models.Session{
		ID:        acct.ID,
		FullName:  acct.FullName,
		Email:     acct.Email,
		Role:      acct.Role,
		LoginTime: models.NowISO(),
	}
	s.session = &session

	if err := s.saveState(session); err != nil {
		// A session that only lasts this process is still a session.
		s.log.Warn(ctx, "could not persist session", "err", err)
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context) {
	s.session = nil
	if s.stateFile == "" {
		return
	}
	if err := os.Remove(s.stateFile); err != nil && !os.IsNotExist(err) {
		s.log.Warn(ctx, "could not remove session state", "err", err)
	}
}

func (s *authService) Session() (models.Session, bool) {
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// Restore loads a previously persisted session, if the state file holds a
// token that still validates. Failures are silent: the operator just logs
// in again.
func (s *authService) Restore(ctx context.Context) {
	if s.stateFile == "" {
		return
	}
	data, err := os.ReadFile(s.stateFile)
	if err != nil {
		return
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(string(data), claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		s.log.Debug(ctx, "stored session rejected", "err", err)
		return
	}

	s.session = &claims.Session
	s.log.Info(ctx, "session restored", "email", claims.Session.Email, "role", claims.Session.Role)
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Session models.Session `json:"session"`
}

func (s *authService) saveState(session models.Session) error {
	if s.stateFile == "" {
		return nil
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
		Session: session,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}
	return os.WriteFile(s.stateFile, []byte(signed), 0o600)
}
