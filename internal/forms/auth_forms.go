package forms

import (
	"github.com/agnesederberg/Final-project-2/internal/repository"

	"github.com/google/uuid"
)

// NewLoginForm builds the login form. The credential match itself is
// not a validator here: login must fail with one generic message
// whichever part is wrong, so the session manager owns that check.
func NewLoginForm(v Values) *Form {
	f := New("login")
	f.Field("email", v["email"], Required(), Length(5, 0))
	f.SecretField("password", v["password"], Required(), Length(5, 0))
	return f
}

// Remember reports whether the login form carried the "remember me" flag.
func Remember(v Values) bool {
	switch v["remember"] {
	case "on", "true", "1", "y":
		return true
	}
	return false
}

func NewRegistrationForm(v Values, users repository.UserReader) *Form {
	f := New("register")
	f.Field("name", v["name"], Required(), Length(2, 128))
	f.Field("email", v["email"], Required(), Email(), UniqueEmail(users))
	f.SecretField("password", v["password"], Required(), Length(2, 20))
	f.SecretField("confirm_password", v["confirm_password"], Required())
	f.EqualTo("confirm_password", "password", "Field must be equal to password.")
	return f
}

func NewUpdateProfileForm(v Values) *Form {
	f := New("update_profile")
	f.Field("name", v["name"], Required(), Length(2, 20))
	return f
}

func NewUpdatePasswordForm(v Values, users repository.UserReader, userID uuid.UUID) *Form {
	f := New("update_password")
	f.SecretField("current_password", v["current_password"],
		Required(), Length(2, 20), CurrentPassword(users, userID))
	f.SecretField("new_password", v["new_password"], Required(), Length(2, 20))
	f.SecretField("confirm_password", v["confirm_password"], Required(), Length(2, 20))
	f.EqualTo("confirm_password", "new_password", "Field must be equal to new password.")
	return f
}
