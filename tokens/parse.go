package tokens

import (
	"strconv"
	"strings"
)

const (
	KindInt    = "int"
	KindFloat  = "float"
	KindVector = "vector"
)

// ParseInt parses a base-10 signed integer. A leading '+' is rejected.
func ParseInt(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		return 0, &FormatError{Kind: KindInt, Text: s}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Kind: KindInt, Text: s, Err: err}
	}
	return n, nil
}

// ParseInts splits on runs of whitespace and parses every field
func ParseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	ret := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := ParseInt(field)
		if err != nil {
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, nil
}

// ParseFloat parses a real number with '.' as the decimal separator.
// strconv never consults the host locale.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FormatError{Kind: KindFloat, Text: s, Err: err}
	}
	return f, nil
}

// FormatFloat renders f so that ParseFloat returns it unchanged
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
