package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReferenceCode(t *testing.T) {
	require.NoError(t, ValidateReferenceCode("ORD-1"))

	err := ValidateReferenceCode("")
	require.Error(t, err)
	assert.True(t, IsDomainError(err, ErrorCodeOrderIDInvalid))
}

func TestReferenceCodeFromInt(t *testing.T) {
	assert.Equal(t, "700123", ReferenceCodeFromInt(700123))
	assert.Equal(t, "0", ReferenceCodeFromInt(0))
	assert.Equal(t, "-8", ReferenceCodeFromInt(-8))
}

func TestBillingAddressIsZero(t *testing.T) {
	var nilAddr *BillingAddress
	assert.True(t, nilAddr.IsZero())
	assert.True(t, (&BillingAddress{}).IsZero())
	assert.False(t, (&BillingAddress{Email: "a@b.c"}).IsZero())
}

func TestMerchantProfileIsUsable(t *testing.T) {
	tests := []struct {
		name    string
		profile *MerchantProfile
		want    bool
	}{
		{name: "nil profile", profile: nil, want: false},
		{name: "empty profile", profile: &MerchantProfile{}, want: false},
		{
			name:    "missing transaction key",
			profile: &MerchantProfile{MerchantID: "m", Currency: "USD"},
			want:    false,
		},
		{
			name:    "missing currency",
			profile: &MerchantProfile{MerchantID: "m", TransactionKey: "k"},
			want:    false,
		},
		{
			name:    "fully populated",
			profile: &MerchantProfile{MerchantID: "m", TransactionKey: "k", Currency: "USD"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IsUsable())
		})
	}
}
