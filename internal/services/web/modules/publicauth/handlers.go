package publicauth

import (
	"net/http"
	"net/url"

	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

const (
	actionVerify = "verify"
	actionResend = "resend"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) errorToast(r *http.Request, key string) *templates.Toast {
	return &templates.Toast{Kind: string(flash.KindError), Message: webi18n.T(h.Localizer(r), key)}
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	next := routepath.SafeNext(r.URL.Query().Get("next"))
	h.WritePage(w, r, pagerender.Page{Title: "Sign in", Body: loginView("", next)})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	next := routepath.SafeNext(formvalue.Get(r, "next"))
	email := formvalue.Get(r, "email")
	quickRole, _ := mockdata.ParseUserType(formvalue.Get(r, "role"))
	if quickRole != "" {
		email = ""
	}

	_, err := h.service.login(r.Context(), h.Namespace(r), email, quickRole)
	if apperrors.KindOf(err) == apperrors.KindUnauthorized {
		h.Metrics().LoginAttempt("failure")
		h.WritePage(w, r, pagerender.Page{
			Title:      "Sign in",
			StatusCode: http.StatusUnauthorized,
			Body:       loginView(email, next),
			Toast:      h.errorToast(r, "toast.login.failed"),
		})
		return
	}
	if err != nil {
		h.Metrics().LoginAttempt("error")
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().LoginAttempt("success")
	h.RedirectWithFlash(w, r, loginTarget(quickRole, next), flash.Success("toast.login.success"))
}

func (h handlers) handleLogoutPost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.logout(r.Context(), h.Namespace(r)); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.RedirectWithFlash(w, r, routepath.Root, flash.Success("toast.logout.success"))
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Create account", Body: registerView(registration{}, "")})
}

func (h handlers) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	reg := registration{
		FullName:        formvalue.Get(r, "fullName"),
		Email:           formvalue.Get(r, "email"),
		Phone:           formvalue.Get(r, "phone"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		AccountType:     parseAccountType(formvalue.Get(r, "accountType")),
		AgreeToTerms:    formvalue.Checked(r, "agreeToTerms"),
	}
	if key := validateRegistration(reg); key != "" {
		toast := h.errorToast(r, key)
		h.WritePage(w, r, pagerender.Page{
			Title:      "Create account",
			StatusCode: http.StatusBadRequest,
			Body:       registerView(reg, toast.Message),
			Toast:      toast,
		})
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("register")
	h.Logger().InfoContext(r.Context(), "registration submitted", "account_type", string(reg.AccountType))
	target := routepath.AuthVerifyEmail + "?" + url.Values{"email": {reg.Email}}.Encode()
	h.RedirectWithFlash(w, r, target, flash.Success("toast.register.success"))
}

func (h handlers) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Forgot password", Body: forgotPasswordView("", false)})
}

func (h handlers) handleForgotPasswordPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	email := formvalue.Get(r, "email")
	if !formvalue.Email(email) {
		toast := h.errorToast(r, "error.email_invalid")
		h.WritePage(w, r, pagerender.Page{
			Title:      "Forgot password",
			StatusCode: http.StatusBadRequest,
			Body:       forgotPasswordView(email, false),
			Toast:      toast,
		})
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("forgot_password")
	h.WritePage(w, r, pagerender.Page{
		Title: "Forgot password",
		Body:  forgotPasswordView(email, true),
		Toast: h.Toast(r, flash.Success("toast.forgot.sent")),
	})
}

func (h handlers) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	h.WritePage(w, r, pagerender.Page{
		Title: "Reset password",
		Body:  resetPasswordView(token, formvalue.PasswordRules{}, ""),
	})
}

func (h handlers) handleResetPasswordPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	token := formvalue.Get(r, "token")
	password := r.FormValue("password")
	if token == "" {
		h.WritePage(w, r, pagerender.Page{
			Title:      "Reset password",
			StatusCode: http.StatusBadRequest,
			Body:       resetPasswordView("", formvalue.PasswordRules{}, ""),
		})
		return
	}
	if key := validateReset(password, r.FormValue("confirmPassword")); key != "" {
		toast := h.errorToast(r, key)
		h.WritePage(w, r, pagerender.Page{
			Title:      "Reset password",
			StatusCode: http.StatusBadRequest,
			Body:       resetPasswordView(token, formvalue.CheckPassword(password), toast.Message),
			Toast:      toast,
		})
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("reset_password")
	h.RedirectWithFlash(w, r, routepath.Login, flash.Success("toast.reset.success"))
}

func (h handlers) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{
		Title: "Verify email",
		Body:  verifyEmailView(r.URL.Query().Get("email")),
	})
}

func (h handlers) handleVerifyEmailPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	email := formvalue.Get(r, "email")
	switch formvalue.Get(r, "action") {
	case actionResend:
		if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
			h.WriteError(w, r, err)
			return
		}
		target := routepath.AuthVerifyEmail
		if email != "" {
			target += "?" + url.Values{"email": {email}}.Encode()
		}
		h.RedirectWithFlash(w, r, target, flash.Success("toast.verify.resent"))
	default:
		h.RedirectWithFlash(w, r, routepath.Login, flash.Success("toast.verify.success"))
	}
}
