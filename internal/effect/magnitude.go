package effect

import (
	"fmt"
	"math"

	"github.com/Neworly/one-year-one-code/internal/domain"
)

// ParseMagnitude decodes a pre-trimmed run of ASCII decimal digits into an integer,
// accumulating digit by digit. Signs, whitespace and separators are rejected.
func ParseMagnitude(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf(ErrFmtEmptyMagnitude, domain.ErrInvalidDigit)
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf(ErrFmtInvalidDigit, domain.ErrInvalidDigit, string(c), s)
		}
		digit := int(c - '0')
		if n > (math.MaxInt-digit)/10 {
			return 0, fmt.Errorf(ErrFmtMagnitudeOverflow, domain.ErrInvalidDigit, s)
		}
		n = n*10 + digit
	}
	return n, nil
}
