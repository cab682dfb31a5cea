package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactInfoSentineled(t *testing.T) {
	tests := []struct {
		name     string
		contact  ContactInfo
		expected ContactInfo
	}{
		{
			name:     "all empty",
			contact:  ContactInfo{},
			expected: ContactInfo{Name: NameNotFound, Email: NotSpecified, Phone: NotSpecified},
		},
		{
			name:     "all present",
			contact:  ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"},
			expected: ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-123-4567"},
		},
		{
			name:     "phone only missing",
			contact:  ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
			expected: ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: NotSpecified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.contact.Sentineled())
		})
	}
}

func TestIdentityValidate(t *testing.T) {
	valid := &Identity{UserID: "user-42", Filename: "resume.pdf"}
	assert.NoError(t, valid.Validate())

	noFilename := &Identity{UserID: "user-42"}
	assert.NoError(t, noFilename.Validate())

	missingUser := &Identity{Filename: "resume.pdf"}
	assert.Error(t, missingUser.Validate())
}
