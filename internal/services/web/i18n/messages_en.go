package i18n

func init() {
	// Layout
	set("layout.site_name", "LCEO")
	set("layout.tagline", "Life-Changing Endeavor Organization")
	set("layout.meta_description", "LCEO empowers young women in Rwanda through education, entrepreneurship and health programs.")
	set("layout.sign_in", "Sign in")
	set("layout.sign_out", "Sign out")
	set("layout.donate", "Donate")
	set("layout.my_portal", "My portal")
	set("layout.newsletter_heading", "Stay in touch")
	set("layout.newsletter_button", "Subscribe")
	set("layout.copyright", "© %d LCEO. All rights reserved.")

	// Page titles
	set("title.page", "%s | LCEO")

	// Toasts
	set("toast.login.success", "Successfully logged in")
	set("toast.login.failed", "Failed to login. Please check your credentials.")
	set("toast.logout.success", "You have been signed out")
	set("toast.register.terms", "Please agree to the terms and conditions")
	set("toast.password.mismatch", "Passwords do not match")
	set("toast.password.too_short", "Password must be at least 8 characters")
	set("toast.register.success", "Account created successfully! Please check your email to verify your account.")
	set("toast.forgot.sent", "Password reset link sent! Please check your email.")
	set("toast.reset.requirements", "Please meet all password requirements")
	set("toast.reset.success", "Password reset successfully!")
	set("toast.verify.success", "Email verified successfully!")
	set("toast.verify.resent", "Verification email resent!")
	set("toast.contact.sent", "Thank you! We'll get back to you soon.")
	set("toast.newsletter.subscribed", "Successfully subscribed to our newsletter!")
	set("toast.footer.subscribed", "Thank you for subscribing!")
	set("toast.tracking.submitted", "Weekly tracking submitted successfully!")
	set("toast.admin.beneficiary_added", "Beneficiary added successfully!")
	set("toast.admin.donor_added", "Donor added successfully!")
	set("toast.admin.status_updated", "Updated status for beneficiary %s to %s")
	set("toast.admin.exporting", "Exporting beneficiary data to CSV...")
	set("toast.settings.saved", "Settings saved successfully!")

	// Validation
	set("error.required_fields", "Please fill in all required fields")
	set("error.email_invalid", "Please enter a valid email address")
	set("error.tracking.amounts", "Income, expenses and savings must be numbers of zero or more")
	set("error.tracking.week", "Week ending must be a date like 2024-06-07")
	set("error.status_invalid", "Choose a valid beneficiary status")
	set("error.program_invalid", "Choose one of the listed programs")
	set("error.capital_invalid", "Start capital must be a number of zero or more")
	set("error.form_unreadable", "We could not read the submitted form")

	// Error pages
	set("error.page.not_found.title", "Page not found")
	set("error.page.not_found.message", "The page you are looking for does not exist.")
	set("error.page.server.title", "Something went wrong")
	set("error.page.server.message", "An unexpected error occurred. Please try again.")
	set("error.page.back_home", "Back to home")

	// Donation wizard
	set("donate.step_of", "Step %d of %d")
	set("donate.guard.program", "Select a program to continue")
	set("donate.guard.amount", "Enter an amount greater than zero")
	set("donate.guard.payment", "Choose a payment method and enter your name and email")
	set("donate.impact.school_supplies", "%d students with school supplies")
	set("donate.impact.mentorship", "%d months of mentorship")
	set("donate.impact.seed_capital", "%d business seed capital grants")
	set("donate.thank_you", "Thank you, %s!")
}
