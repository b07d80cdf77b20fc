package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
	"github.com/dmarquezv/tiendaropa/internal/domain/repository"
	"github.com/dmarquezv/tiendaropa/internal/infrastructure/identity"
)

// User-facing messages for the fixed vocabulary of provider sign-in errors.
// Unrecognized codes fall back to MsgAuthGeneric.
const (
	MsgAuthGeneric      = "Error de autenticación"
	MsgConnectionFailed = "Error de conexión con el servidor"
)

var signInMessages = map[string]string{
	identity.CodeInvalidCredentials: "La contraseña es incorrecta o el correo no es válido.",
	identity.CodeEmailNotFound:      "Este correo no está registrado.",
	identity.CodeUserDisabled:       "Esta cuenta ha sido inhabilitada.",
	identity.CodeTooManyAttempts:    "Demasiados intentos. Espere unos minutos.",
}

// IdentityClient is the slice of the identity provider the auth flows use.
type IdentityClient interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	SignInWithPassword(ctx context.Context, email, password string) (*identity.SignedIn, error)
}

// AuthService owns registration, sign-in and the dashboard profile read.
type AuthService struct {
	Identity IdentityClient
	Profiles repository.ProfileRepository
	Logger   *logrus.Logger
}

func NewAuthService(id IdentityClient, profiles repository.ProfileRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Identity: id, Profiles: profiles, Logger: logger}
}

// Register creates the provider user, then the seller profile keyed by the
// returned uid. The profile write is only attempted after user creation
// succeeds, so a provider failure never leaves a profile behind.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	uid, err := s.Identity.CreateUser(ctx, email, password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("provider user creation failed")
		}
		return "", err
	}

	profile := &entity.Profile{
		UID:   uid,
		Email: email,
		Role:  entity.RoleSeller,
	}
	if err := s.Profiles.Set(ctx, profile); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("uid", uid).Error("profile write failed after user creation")
		}
		return "", err
	}
	return uid, nil
}

// SignIn exchanges credentials for a provider session. Callers translate
// failures with SignInErrorMessage.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*identity.SignedIn, error) {
	res, err := s.Identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Info("sign-in rejected")
		}
		return nil, err
	}
	return res, nil
}

// SignInErrorMessage maps a sign-in failure to the message shown to the
// seller. Provider codes use the fixed vocabulary, transport failures get a
// distinct connectivity message, anything else falls back to the generic one.
func SignInErrorMessage(err error) string {
	var perr *identity.ProviderError
	switch {
	case errors.As(err, &perr):
		if msg, ok := signInMessages[perr.Code]; ok {
			return msg
		}
		return MsgAuthGeneric
	case errors.Is(err, identity.ErrUnreachable):
		return MsgConnectionFailed
	default:
		return "Error inesperado: " + err.Error()
	}
}

// DashboardProfile loads the seller's profile. A missing document is not an
// error: the view is synthesized from the session values without persisting
// anything.
func (s *AuthService) DashboardProfile(ctx context.Context, uid, email string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return &entity.Profile{UID: uid, Email: email, Role: entity.RoleSeller}, nil
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("uid", uid).Error("profile read failed")
		}
		return nil, err
	}
	return p, nil
}
