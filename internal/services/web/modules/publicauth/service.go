package publicauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/lceo-rwanda/portal/internal/portal/auth"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/portal/role"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// registration is the submitted sign-up form.
type registration struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AccountType     mockdata.UserType
	AgreeToTerms    bool
}

type service struct {
	sessions module.Sessions
}

func newService(sessions module.Sessions) service {
	return service{sessions: sessions}
}

// login signs the browser in. Unknown credentials map to an unauthorized
// web error so handlers can re-render the form.
func (s service) login(ctx context.Context, namespace, email string, userType mockdata.UserType) (mockdata.User, error) {
	user, err := s.sessions.Login(ctx, namespace, email, userType)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return mockdata.User{}, apperrors.Wrap(apperrors.KindUnauthorized, "toast.login.failed", err)
	}
	if err != nil {
		return mockdata.User{}, fmt.Errorf("login: %w", err)
	}
	return user, nil
}

func (s service) logout(ctx context.Context, namespace string) error {
	if err := s.sessions.Logout(ctx, namespace); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// loginTarget is the quick-login role home, or the requested return path.
func loginTarget(quickRole mockdata.UserType, next string) string {
	if quickRole != "" {
		return role.HomePath(quickRole)
	}
	return routepath.SafeNext(next)
}

// validateRegistration returns the catalog key of the first failing rule.
func validateRegistration(reg registration) string {
	switch {
	case formvalue.AnyBlank(reg.FullName, reg.Email, reg.Password, reg.ConfirmPassword):
		return "error.required_fields"
	case !formvalue.Email(reg.Email):
		return "error.email_invalid"
	case !reg.AgreeToTerms:
		return "toast.register.terms"
	case reg.Password != reg.ConfirmPassword:
		return "toast.password.mismatch"
	case len(reg.Password) < formvalue.MinPasswordLength:
		return "toast.password.too_short"
	}
	return ""
}

// validateReset returns the catalog key of the first failing rule.
func validateReset(password, confirm string) string {
	if !formvalue.CheckPassword(password).All() {
		return "toast.reset.requirements"
	}
	if password != confirm {
		return "toast.password.mismatch"
	}
	return ""
}

// accountTypes are the self-service sign-up roles.
var accountTypes = []mockdata.UserType{mockdata.UserTypeDonor, mockdata.UserTypeBeneficiary}

func parseAccountType(raw string) mockdata.UserType {
	userType, ok := mockdata.ParseUserType(raw)
	if !ok || userType == mockdata.UserTypeAdmin {
		return mockdata.UserTypeDonor
	}
	return userType
}
