package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xsnapster/backend/internal/pkg/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// ClassifyIdentifier determines whether an identifier is an email address or
// a phone number and returns the normalized value with its channel.
func ClassifyIdentifier(identifier string) (string, string, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", "", fmt.Errorf("identifier is required")
	}

	if emailRegex.MatchString(trimmed) {
		return strings.ToLower(trimmed), models.ChannelEmail, nil
	}

	// Strip common phone formatting before validating
	compact := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(trimmed)
	if phoneRegex.MatchString(compact) {
		return compact, models.ChannelPhone, nil
	}

	return "", "", fmt.Errorf("identifier must be a valid email address or phone number")
}
