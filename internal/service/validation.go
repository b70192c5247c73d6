package service

import (
	"regexp"
	"strings"

	"cityscope/internal/apperror"
	"cityscope/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRegister trims the input in place and returns a single validation
// error listing every violated rule.
func validateRegister(input *model.RegisterInput) error {
	input.Firstname = strings.TrimSpace(input.Firstname)
	input.Lastname = strings.TrimSpace(input.Lastname)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	var problems []string

	if input.Username == "" {
		problems = append(problems, "Username is required")
	}
	if !emailPattern.MatchString(input.Email) {
		problems = append(problems, "Invalid email format")
	}
	if len(input.Password) < 8 {
		problems = append(problems, "Password must be at least 8 characters")
	}
	if !containsLetterAndDigit(input.Password) {
		problems = append(problems, "Password must contain letters and numbers")
	}

	if len(problems) > 0 {
		return apperror.Validation(strings.Join(problems, ", "))
	}
	return nil
}

func validateLogin(input *model.LoginInput) error {
	input.Email = strings.TrimSpace(input.Email)

	var problems []string

	if !emailPattern.MatchString(input.Email) {
		problems = append(problems, "Invalid email address")
	}
	if len(input.Password) < 6 {
		problems = append(problems, "Password must be at least 6 characters")
	}

	if len(problems) > 0 {
		return apperror.Validation(strings.Join(problems, ", "))
	}
	return nil
}

func containsLetterAndDigit(password string) bool {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	return hasLetter && hasDigit
}
