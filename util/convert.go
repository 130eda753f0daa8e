// Package util holds conversion and terminal helpers shared by the argline
// library and its command line tool.
package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrMissingValue    = errors.New("no value to convert")
	ErrParseInt        = errors.New("value is not an integer")
	ErrParseUint       = errors.New("value is not an unsigned integer")
	ErrParseFloat      = errors.New("value is not a number")
	ErrParseBool       = errors.New("value is not a boolean")
	ErrParseTime       = errors.New("value is not a date or time")
	ErrUnsupportedType = errors.New("unsupported conversion target")
)

// ListDelimiterFunc reports whether a rune separates elements of a list
// value.
type ListDelimiterFunc func(r rune) bool

// StandardDelimiters treats ',', '|' and ' ' as list separators.
func StandardDelimiters(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// ConvertString converts value into the variable pointed to by data. data
// must be a pointer to one of the supported scalar types, *time.Time or
// *[]string. delimiterFunc splits list values and may be nil when data is not
// a list.
func ConvertString(value string, data any, delimiterFunc ListDelimiterFunc) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		if delimiterFunc == nil {
			delimiterFunc = StandardDelimiters
		}
		*t = strings.FieldsFunc(value, func(r rune) bool { return delimiterFunc(r) })
	case *int:
		val, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseInt, value)
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseInt, value)
		}
		*t = val
	case *int32:
		val, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseInt, value)
		}
		*t = int32(val)
	case *uint:
		val, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseUint, value)
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseUint, value)
		}
		*t = val
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseFloat, value)
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseFloat, value)
		}
		*t = float32(val)
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseBool, value)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseTime, value)
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}
	return nil
}
