package command

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// parseInts splits s on commas and whitespace and parses every token as an
// int. All malformed tokens are reported together. An empty s yields an
// empty slice.
func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	out := make([]int, 0, len(fields))
	var errs error
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "token %d", i))
			continue
		}
		out = append(out, v)
	}
	if errs != nil {
		return nil, errs
	}

	return out, nil
}

// joinInts renders values separated by single spaces.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
