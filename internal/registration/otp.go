package registration

import "strings"

// OTPLength is the number of digits in a verification code.
const OTPLength = 6

// OTP holds the six verification code boxes. Each element is either
// empty or a single ASCII digit.
type OTP [OTPLength]string

// IsDigit reports whether s is exactly one ASCII digit.
func IsDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// Set returns a copy with position i replaced by s. It refuses anything
// that is not "" or a single digit, and positions outside the code.
func (o OTP) Set(i int, s string) (OTP, bool) {
	if i < 0 || i >= OTPLength {
		return o, false
	}
	if s != "" && !IsDigit(s) {
		return o, false
	}
	o[i] = s
	return o, true
}

// Valid reports whether every box is empty or a single digit.
func (o OTP) Valid() bool {
	for _, s := range o {
		if s != "" && !IsDigit(s) {
			return false
		}
	}
	return true
}

// Complete reports whether all six boxes hold a digit.
func (o OTP) Complete() bool {
	for _, s := range o {
		if s == "" {
			return false
		}
	}
	return true
}

// Code joins the boxes into a single string.
func (o OTP) Code() string {
	return strings.Join(o[:], "")
}
