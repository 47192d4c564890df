package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantErr    bool
	}{
		{name: "valid email", identifier: "user@example.com", wantErr: false},
		{name: "valid email with plus", identifier: "user+tag@example.co.uk", wantErr: false},
		{name: "valid phone", identifier: "+4915123456789", wantErr: false},
		{name: "email with surrounding spaces", identifier: "  user@example.com  ", wantErr: false},
		{name: "empty", identifier: "", wantErr: true},
		{name: "spaces only", identifier: "   ", wantErr: true},
		{name: "missing domain", identifier: "user@", wantErr: true},
		{name: "missing at sign", identifier: "example.com", wantErr: true},
		{name: "phone without plus", identifier: "4915123456789", wantErr: true},
		{name: "phone too short", identifier: "+123", wantErr: true},
		{name: "too long", identifier: strings.Repeat("a", 250) + "@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.identifier)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
