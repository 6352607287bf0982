package publicauth

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLoginPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogoutPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthRegister, h.handleRegister)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthRegister, h.handleRegisterPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthForgotPassword, h.handleForgotPassword)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthForgotPassword, h.handleForgotPasswordPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthResetPassword, h.handleResetPassword)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthResetPassword, h.handleResetPasswordPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthVerifyEmail, h.handleVerifyEmail)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthVerifyEmail, h.handleVerifyEmailPost)
	mux.HandleFunc(routepath.AuthPrefix, h.RedirectHome)
}
