package publicauth

import (
	"github.com/a-h/templ"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/portal/role"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	ui "github.com/lceo-rwanda/portal/internal/services/web/templates"
)

func authCard(title, subtitle string, body ...templ.Component) templ.Component {
	return ui.Section("auth-card",
		ui.H1(title),
		ui.If(subtitle != "", ui.P(subtitle)),
		ui.Group(body...),
	)
}

func loginView(email, next string) templ.Component {
	return authCard("Welcome back", "Sign in to your LCEO portal",
		ui.Form(routepath.Login,
			ui.Hidden("next", next),
			ui.Field("Email address", "email", "email", email, true),
			ui.Field("Password", "password", "password", "", false),
			ui.Submit("Sign in", "", ""),
		),
		ui.Link(routepath.AuthForgotPassword, "auth-link", "Forgot your password?"),
		ui.Div("quick-login",
			ui.H2("Demo access"),
			ui.Form(routepath.Login,
				ui.Hidden("next", next),
				ui.Each(role.All(), func(cfg role.Config) templ.Component {
					return ui.Submit(cfg.PortalLabel, "role", string(cfg.UserType))
				}),
			),
		),
		ui.El("p", nil, ui.Text("New to LCEO? "), ui.Link(routepath.AuthRegister, "auth-link", "Create an account")),
	)
}

func registerView(reg registration, errMessage string) templ.Component {
	options := make([]ui.Option, 0, len(accountTypes))
	for _, t := range accountTypes {
		options = append(options, ui.Option{Value: string(t), Label: role.For(t).PortalLabel})
	}
	selected := string(reg.AccountType)
	if selected == "" {
		selected = string(mockdata.UserTypeDonor)
	}
	return authCard("Create your account", "Join the LCEO community",
		ui.FieldError(errMessage),
		ui.Form(routepath.AuthRegister,
			ui.Field("Full name", "fullName", "text", reg.FullName, true),
			ui.Field("Email address", "email", "email", reg.Email, true),
			ui.Field("Phone number", "phone", "tel", reg.Phone, false),
			ui.Select("Account type", "accountType", options, selected),
			ui.Field("Password", "password", "password", "", true),
			ui.Field("Confirm password", "confirmPassword", "password", "", true),
			ui.Checkbox("I agree to the terms and conditions", "agreeToTerms", reg.AgreeToTerms),
			ui.Submit("Create account", "", ""),
		),
		ui.El("p", nil, ui.Text("Already have an account? "), ui.Link(routepath.Login, "auth-link", "Sign in")),
	)
}

func forgotPasswordView(email string, sent bool) templ.Component {
	if sent {
		return authCard("Check your email", "We sent a password reset link to "+email+".",
			ui.Link(routepath.Login, "button", "Back to sign in"),
		)
	}
	return authCard("Forgot password?", "Enter your email and we will send you a reset link.",
		ui.Form(routepath.AuthForgotPassword,
			ui.Field("Email address", "email", "email", email, true),
			ui.Submit("Send reset link", "", ""),
		),
		ui.Link(routepath.Login, "auth-link", "Back to sign in"),
	)
}

func passwordRule(met bool, label string) templ.Component {
	class := "rule"
	if met {
		class += " met"
	}
	return ui.El("li", ui.A("class", class), ui.Text(label))
}

func resetPasswordView(token string, rules formvalue.PasswordRules, errMessage string) templ.Component {
	if token == "" {
		return authCard("Invalid reset link", "This password reset link is invalid or has expired.",
			ui.Link(routepath.AuthForgotPassword, "button", "Request a new link"),
		)
	}
	return authCard("Set a new password", "",
		ui.FieldError(errMessage),
		ui.Form(routepath.AuthResetPassword,
			ui.Hidden("token", token),
			ui.Field("New password", "password", "password", "", true),
			ui.Field("Confirm password", "confirmPassword", "password", "", true),
			ui.El("ul", ui.A("class", "password-rules"),
				passwordRule(rules.MinLength, "At least 8 characters"),
				passwordRule(rules.Upper, "Contains uppercase letter"),
				passwordRule(rules.Lower, "Contains lowercase letter"),
				passwordRule(rules.Digit, "Contains a number"),
			),
			ui.Submit("Reset password", "", ""),
		),
	)
}

func verifyEmailView(email string) templ.Component {
	shown := email
	if shown == "" {
		shown = "your email"
	}
	return authCard("Verify your email", "We sent a verification link to "+shown+".",
		ui.Form(routepath.AuthVerifyEmail,
			ui.Hidden("email", email),
			ui.Submit("I have verified my email", "action", actionVerify),
			ui.Submit("Resend verification email", "action", actionResend),
		),
		ui.Link(routepath.Login, "auth-link", "Back to sign in"),
	)
}
