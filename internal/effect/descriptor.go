package effect

import (
	"fmt"
	"strings"

	"github.com/Neworly/one-year-one-code/internal/domain"
)

// ParseDescriptor splits an ability text such as "Heal: 999, Status: None" into
// ordered name/value pairs.
//
// Segments are comma separated; segments of MinSegmentLength characters or fewer
// after trimming are skipped. Inside a segment, colon separated tokens alternate
// name, value, name, value... A segment ending on a name fails with ErrMissingValue.
func ParseDescriptor(text string) ([]domain.EffectPair, error) {
	raw := strings.TrimSpace(text) + SegmentSeparator

	var pairs []domain.EffectPair
	for _, segment := range strings.Split(raw, SegmentSeparator) {
		if len(strings.TrimSpace(segment)) <= MinSegmentLength {
			continue
		}

		segmentPairs, err := parseSegment(segment)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, segmentPairs...)
	}
	return pairs, nil
}

func parseSegment(segment string) ([]domain.EffectPair, error) {
	var (
		pairs    []domain.EffectPair
		name     string
		wantsVal bool
	)

	for _, token := range strings.Split(segment, PairSeparator) {
		token = strings.TrimSpace(token)
		if !wantsVal {
			name = token
			wantsVal = true
			continue
		}
		pairs = append(pairs, domain.EffectPair{Name: name, Value: token})
		wantsVal = false
	}

	if wantsVal {
		return nil, fmt.Errorf(ErrFmtMissingValue, domain.ErrMissingValue, name)
	}
	return pairs, nil
}
