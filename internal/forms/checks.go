package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Required fails on an empty value.
func Required() Check {
	return func(_ context.Context, value string) string {
		if value == "" {
			return "This field is required."
		}
		return ""
	}
}

// Length bounds the value's length. max <= 0 means unbounded above.
func Length(min, max int) Check {
	return func(_ context.Context, value string) string {
		if len(value) < min || (max > 0 && len(value) > max) {
			if max > 0 {
				return fmt.Sprintf("Field must be between %d and %d characters long.", min, max)
			}
			return fmt.Sprintf("Field must be at least %d characters long.", min)
		}
		return ""
	}
}

// Email checks well-formedness of an email address.
func Email() Check {
	return func(_ context.Context, value string) string {
		if err := validate.Var(value, "email"); err != nil {
			return "Invalid email address."
		}
		return ""
	}
}

// UniqueEmail fails when a user with this email already exists. A
// storage failure also fails the field so the handler redisplays
// instead of committing on unverified input.
func UniqueEmail(users repository.UserReader) Check {
	return func(ctx context.Context, value string) string {
		_, err := users.FindUserByEmail(ctx, value)
		switch {
		case err == nil:
			return "This email is already registered. Please choose a different one."
		case errors.Is(err, repository.ErrNotFound):
			return ""
		default:
			return "Could not verify this email right now. Please try again later."
		}
	}
}

// CurrentPassword fails unless the value verifies against the stored
// credential digest of the given principal.
func CurrentPassword(users repository.UserReader, userID uuid.UUID) Check {
	return func(ctx context.Context, value string) string {
		user, err := users.FindUserByID(ctx, userID)
		if err != nil {
			return "Could not verify your password right now. Please try again later."
		}
		if auth.VerifyPassword(user.PasswordHash, value) != nil {
			return "Your current password did not match! Please input the right password."
		}
		return ""
	}
}

// CategoryExists fails unless the value is a UUID of an existing category.
func CategoryExists(categories repository.CategoryRepository) Check {
	return func(ctx context.Context, value string) string {
		id, err := uuid.Parse(value)
		if err != nil {
			return "Please pick a valid category."
		}
		if _, err := categories.FindCategoryByID(ctx, id); err != nil {
			return "Please pick a valid category."
		}
		return ""
	}
}
