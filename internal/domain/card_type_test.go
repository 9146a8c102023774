package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardTypeCode(t *testing.T) {
	tests := []struct {
		brand    string
		wantCode string
		wantOK   bool
	}{
		{brand: "VISA", wantCode: "001", wantOK: true},
		{brand: "MASTERCARD", wantCode: "002", wantOK: true},
		{brand: "AMEX", wantCode: "003", wantOK: true},
		{brand: "AMERICAN EXPRESS", wantCode: "003", wantOK: true},
		{brand: "DISCOVER", wantCode: "004", wantOK: true},
		{brand: "JCB", wantCode: "007", wantOK: true},
		// case-sensitive exact match
		{brand: "visa", wantOK: false},
		{brand: "Visa", wantOK: false},
		{brand: "MAESTRO", wantOK: false},
		{brand: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.brand, func(t *testing.T) {
			code, ok := CardTypeCode(tt.brand)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
