package utils

import (
	rndm "math/rand"
	"strconv"
	"strings"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var upperAlnumRunes = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// NewOrderID builds an order id of the form EF<unix-millis><4 upper alnum>.
func NewOrderID() string {
	var sb strings.Builder
	sb.WriteString("EF")
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for i := 0; i < 4; i++ {
		sb.WriteRune(upperAlnumRunes[rndm.Intn(len(upperAlnumRunes))])
	}
	return sb.String()
}

// FormatAmount renders an integer rupee amount with thousands separators,
// e.g. 134900 -> "1,34,900" is not attempted; plain western grouping is used.
func FormatAmount(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
