package utils

import (
	"fmt"
	"regexp"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateEmail(email string) (bool, error) {
	email_regex_pattern := `^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`

	regex, err := regexp.Compile(email_regex_pattern)
	if err != nil {
		return false, fmt.Errorf("error: compiling regex: %s", err)
	}

	if !regex.MatchString(email) {
		return false, fmt.Errorf("error: email format incorrect")
	}
	return true, nil
}

func ValidatePhone(phone string) (bool, error) {
	phone_regex_patterns := []string{
		`^\+?[1-9]\d{7,14}$`, // E.164 international
		`^0[1-9]\d{8,9}$`,    // Domestic format: 0 + 9-10 digits
	}

	for _, pattern := range phone_regex_patterns {
		if matched, _ := regexp.MatchString(pattern, phone); matched {
			return true, nil
		}
	}
	return false, fmt.Errorf("phone format incorrect")
}
