package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"electrofusion/models"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidationError reports a rejected checkout field; its message is shown
// to the user as-is.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ValidateAddress checks the delivery address before an order may be
// constructed. The first failing rule is reported.
func ValidateAddress(addr models.Address) error {
	required := []struct {
		field, value string
	}{
		{"name", addr.Name},
		{"email", addr.Email},
		{"phone", addr.Phone},
		{"street", addr.Street},
		{"city", addr.City},
		{"state", addr.State},
		{"pincode", addr.Pincode},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Field: missing[0],
			Msg:   fmt.Sprintf("Please fill all required fields. Missing: %s", strings.Join(missing, ", ")),
		}
	}

	if !emailRe.MatchString(addr.Email) {
		return &ValidationError{Field: "email", Msg: "Invalid email address"}
	}
	if !phoneRe.MatchString(addr.Phone) {
		return &ValidationError{Field: "phone", Msg: "Please enter a 10-digit phone number"}
	}
	if !pincodeRe.MatchString(addr.Pincode) {
		return &ValidationError{Field: "pincode", Msg: "Please enter a 6-digit pincode"}
	}
	return nil
}

// ValidatePaymentMethod rejects a missing or unknown method.
func ValidatePaymentMethod(method string) error {
	switch method {
	case models.PaymentCard, models.PaymentUPI, models.PaymentNetBanking, models.PaymentCOD:
		return nil
	case "":
		return &ValidationError{Field: "paymentMethod", Msg: "Please select a payment method"}
	default:
		return &ValidationError{Field: "paymentMethod", Msg: "Unsupported payment method"}
	}
}
