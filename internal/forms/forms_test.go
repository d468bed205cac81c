package forms

import (
	"context"
	"testing"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/models"
	"github.com/agnesederberg/Final-project-2/internal/repository"
)

func checkCalls(counter *int, result string) Check {
	return func(_ context.Context, _ string) string {
		*counter++
		return result
	}
}

func TestFieldChainShortCircuits(t *testing.T) {
	ctx := context.Background()

	var afterFailure int
	f := New("test")
	f.Field("a", "", Required(), checkCalls(&afterFailure, "should not run"))
	f.Field("b", "value", checkCalls(new(int), ""))

	if f.Validate(ctx) {
		t.Fatal("Expected validation to fail")
	}
	if afterFailure != 0 {
		t.Errorf("Check after a failing check ran %d times, want 0", afterFailure)
	}
	if f.Errors["a"] != "This field is required." {
		t.Errorf("Unexpected error for a: %q", f.Errors["a"])
	}
	if _, ok := f.Errors["b"]; ok {
		t.Error("Field b should not carry an error")
	}
}

func TestFieldsValidateIndependently(t *testing.T) {
	ctx := context.Background()

	f := New("test")
	f.Field("a", "", Required())
	f.Field("b", "", Required())

	f.Validate(ctx)
	if len(f.Errors) != 2 {
		t.Errorf("Expected both fields to report errors, got %v", f.Errors)
	}
}

func TestCrossFieldRunsOnlyWhenBothPass(t *testing.T) {
	ctx := context.Background()

	// confirm fails its own chain, so the EqualTo rule must not run
	// and must not overwrite the chain's error.
	f := New("test")
	f.SecretField("password", "secret1", Required())
	f.SecretField("confirm", "", Required())
	f.EqualTo("confirm", "password", "Field must be equal to password.")

	f.Validate(ctx)
	if f.Errors["confirm"] != "This field is required." {
		t.Errorf("Cross-field rule ran before the field chain passed: %q", f.Errors["confirm"])
	}

	f2 := New("test")
	f2.SecretField("password", "secret1", Required())
	f2.SecretField("confirm", "secret2", Required())
	f2.EqualTo("confirm", "password", "Field must be equal to password.")

	if f2.Validate(ctx) {
		t.Fatal("Expected mismatch to fail")
	}
	if f2.Errors["confirm"] != "Field must be equal to password." {
		t.Errorf("Unexpected cross-field error: %q", f2.Errors["confirm"])
	}
}

func TestValidateIsRepeatable(t *testing.T) {
	ctx := context.Background()

	f := New("test")
	f.Field("a", "ok", Required())

	for i := 0; i < 3; i++ {
		if !f.Validate(ctx) {
			t.Fatalf("Validation pass %d failed: %v", i, f.Errors)
		}
	}
}

func TestValuesExcludeSecrets(t *testing.T) {
	f := New("test")
	f.Field("email", "ann@example.com", Required())
	f.SecretField("password", "secret1", Required())

	values := f.Values()
	if _, ok := values["password"]; ok {
		t.Error("Secret field leaked into redisplay values")
	}
	if values["email"] != "ann@example.com" {
		t.Errorf("Missing non-secret value: %v", values)
	}
}

func TestLengthBounds(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		value string
		min   int
		max   int
		ok    bool
	}{
		{"ab", 2, 20, true},
		{"a", 2, 20, false},
		{"aaaaaaaaaaaaaaaaaaaaa", 2, 20, false},
		{"abcdef", 5, 0, true},
		{"abcd", 5, 0, false},
	}
	for _, tc := range cases {
		got := Length(tc.min, tc.max)(ctx, tc.value)
		if (got == "") != tc.ok {
			t.Errorf("Length(%d,%d)(%q) = %q, want ok=%v", tc.min, tc.max, tc.value, got, tc.ok)
		}
	}
}

func TestEmailCheck(t *testing.T) {
	ctx := context.Background()
	if msg := Email()(ctx, "ann@example.com"); msg != "" {
		t.Errorf("Valid email rejected: %q", msg)
	}
	if msg := Email()(ctx, "not-an-email"); msg == "" {
		t.Error("Invalid email accepted")
	}
}

func TestUniqueEmailConsultsRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	if err := repo.CreateUser(ctx, &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}); err != nil {
		t.Fatal(err)
	}

	check := UniqueEmail(repo)
	if msg := check(ctx, "ann@example.com"); msg == "" {
		t.Error("Registered email accepted as unique")
	}
	if msg := check(ctx, "bob@example.com"); msg != "" {
		t.Errorf("Unused email rejected: %q", msg)
	}

	// The check reflects latest committed state: once Ann is gone her
	// email becomes available again.
	user, err := repo.FindUserByEmail(ctx, "ann@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	if msg := check(ctx, "ann@example.com"); msg != "" {
		t.Errorf("Freed email still rejected: %q", msg)
	}
}

func TestRegistrationForm(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	t.Run("valid input", func(t *testing.T) {
		f := NewRegistrationForm(Values{
			"name":             "Ann",
			"email":            "ann@example.com",
			"password":         "secret1",
			"confirm_password": "secret1",
		}, repo)
		if !f.Validate(ctx) {
			t.Fatalf("Expected valid form, got %v", f.Errors)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		f := NewRegistrationForm(Values{
			"name":             "Ann",
			"email":            "ann@example.com",
			"password":         "secret1",
			"confirm_password": "secret2",
		}, repo)
		if f.Validate(ctx) {
			t.Fatal("Expected mismatch to fail")
		}
		if _, ok := f.Errors["confirm_password"]; !ok {
			t.Errorf("Expected confirm_password error, got %v", f.Errors)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		if err := repo.CreateUser(ctx, &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}); err != nil {
			t.Fatal(err)
		}
		f := NewRegistrationForm(Values{
			"name":             "Ann",
			"email":            "ann@example.com",
			"password":         "secret1",
			"confirm_password": "secret1",
		}, repo)
		if f.Validate(ctx) {
			t.Fatal("Expected duplicate email to fail")
		}
		if f.Errors["email"] != "This email is already registered. Please choose a different one." {
			t.Errorf("Unexpected email error: %q", f.Errors["email"])
		}
	})
}

func TestUpdatePasswordForm(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: hash}
	if err := repo.CreateUser(ctx, &user); err != nil {
		t.Fatal(err)
	}

	t.Run("correct current password", func(t *testing.T) {
		f := NewUpdatePasswordForm(Values{
			"current_password": "secret1",
			"new_password":     "secret2",
			"confirm_password": "secret2",
		}, repo, user.ID)
		if !f.Validate(ctx) {
			t.Fatalf("Expected valid form, got %v", f.Errors)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := NewUpdatePasswordForm(Values{
			"current_password": "wrong12",
			"new_password":     "secret2",
			"confirm_password": "secret2",
		}, repo, user.ID)
		if f.Validate(ctx) {
			t.Fatal("Expected wrong current password to fail")
		}
		if _, ok := f.Errors["current_password"]; !ok {
			t.Errorf("Expected current_password error, got %v", f.Errors)
		}
	})
}

func TestFolderForm(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	category := models.Category{Name: "Work"}
	if err := repo.CreateCategory(ctx, &category); err != nil {
		t.Fatal(err)
	}

	f := NewFolderForm(Values{"name": "Projects", "category_id": category.ID.String()}, repo)
	if !f.Validate(ctx) {
		t.Fatalf("Expected valid folder form, got %v", f.Errors)
	}

	f = NewFolderForm(Values{"name": "Projects", "category_id": "not-a-uuid"}, repo)
	if f.Validate(ctx) {
		t.Fatal("Expected bad category id to fail")
	}
}
