package checkout

import (
	"testing"

	"electrofusion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() models.Address {
	return models.Address{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Address)
		wantField string
	}{
		{"valid", func(a *models.Address) {}, ""},
		{"valid with landmark", func(a *models.Address) { a.Landmark = "Near metro" }, ""},
		{"missing name", func(a *models.Address) { a.Name = "" }, "name"},
		{"missing email", func(a *models.Address) { a.Email = "" }, "email"},
		{"missing street", func(a *models.Address) { a.Street = "  " }, "street"},
		{"malformed email", func(a *models.Address) { a.Email = "not-an-email" }, "email"},
		{"email without domain dot", func(a *models.Address) { a.Email = "a@b" }, "email"},
		{"phone too short", func(a *models.Address) { a.Phone = "12345" }, "phone"},
		{"phone too long", func(a *models.Address) { a.Phone = "98765432101" }, "phone"},
		{"phone with letters", func(a *models.Address) { a.Phone = "98765abcde" }, "phone"},
		{"pincode too short", func(a *models.Address) { a.Pincode = "5600" }, "pincode"},
		{"pincode with letters", func(a *models.Address) { a.Pincode = "56000a" }, "pincode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)

			err := ValidateAddress(addr)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateAddressReportsAllMissingFields(t *testing.T) {
	err := ValidateAddress(models.Address{Name: "X"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Msg, "email")
	assert.Contains(t, vErr.Msg, "phone")
	assert.Contains(t, vErr.Msg, "pincode")
}

func TestValidatePaymentMethod(t *testing.T) {
	for _, method := range []string{models.PaymentCard, models.PaymentUPI, models.PaymentNetBanking, models.PaymentCOD} {
		assert.NoError(t, ValidatePaymentMethod(method), method)
	}

	var vErr *ValidationError
	require.ErrorAs(t, ValidatePaymentMethod(""), &vErr)
	assert.Equal(t, "Please select a payment method", vErr.Msg)

	require.ErrorAs(t, ValidatePaymentMethod("cheque"), &vErr)
	assert.Equal(t, "Unsupported payment method", vErr.Msg)
}
