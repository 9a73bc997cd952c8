package ticket

import (
	"fmt"
	"regexp"
	"time"
)

const dayLayout = "060102"

var numberPattern = regexp.MustCompile(`^\d{6}-\d{3,}$`)

// Number is the display code YYMMDD-XXX. The sequence is zero-padded to at least
// three digits and restarts at 001 every calendar day.
type Number struct {
	value string
}

// NewNumber formats the code for the seq-th ticket of day. day must already be
// expressed in the hospital's time zone.
func NewNumber(day time.Time, seq int64) (Number, error) {
	if seq < 1 {
		return Number{}, ErrInvalidSequence
	}
	return Number{value: fmt.Sprintf("%s-%03d", day.Format(dayLayout), seq)}, nil
}

func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, ErrInvalidNumber
	}
	return Number{value: s}, nil
}

func (n Number) String() string { return n.value }

// Day returns the YYMMDD prefix.
func (n Number) Day() string {
	if len(n.value) < len(dayLayout) {
		return ""
	}
	return n.value[:len(dayLayout)]
}
