package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xsnapster/backend/internal/pkg/models"
)

func TestClassifyIdentifier(t *testing.T) {
	testCases := []struct {
		name       string
		identifier string
		wantValue  string
		wantField  string
		wantErr    bool
	}{
		{
			name:       "valid email",
			identifier: "user@example.com",
			wantValue:  "user@example.com",
			wantField:  models.ChannelEmail,
		},
		{
			name:       "email is lowercased",
			identifier: "User@Example.COM",
			wantValue:  "user@example.com",
			wantField:  models.ChannelEmail,
		},
		{
			name:       "email with surrounding whitespace",
			identifier: "  user@example.com  ",
			wantValue:  "user@example.com",
			wantField:  models.ChannelEmail,
		},
		{
			name:       "international phone number",
			identifier: "+6281234567890",
			wantValue:  "+6281234567890",
			wantField:  models.ChannelPhone,
		},
		{
			name:       "phone with formatting characters",
			identifier: "+62 812-3456-7890",
			wantValue:  "+6281234567890",
			wantField:  models.ChannelPhone,
		},
		{
			name:       "empty identifier",
			identifier: "",
			wantErr:    true,
		},
		{
			name:       "garbage identifier",
			identifier: "not-an-identifier",
			wantErr:    true,
		},
		{
			name:       "phone too short",
			identifier: "12345",
			wantErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, field, err := ClassifyIdentifier(tc.identifier)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantValue, value)
			assert.Equal(t, tc.wantField, field)
		})
	}
}
