package convert

import "github.com/graphlift/graphlift/pkg/errors"

// Format identifies which analyzer export shape an input document has.
// It is the discriminant of the conversion dispatch: every value flowing
// through the facade is classified as exactly one Format.
type Format string

// Recognized formats. FormatUnknown is a first-class variant, not an
// error: detection always succeeds, and only conversion of an unknown
// document fails.
const (
	FormatReact       Format = "react"
	FormatReactLegacy Format = "react-legacy"
	FormatJava        Format = "java"
	FormatDjango      Format = "django"
	FormatUnknown     Format = "unknown"
)

// Formats lists the convertible formats in detection priority order.
// FormatUnknown is excluded; it has no converter.
func Formats() []Format {
	return []Format{FormatReact, FormatReactLegacy, FormatJava, FormatDjango}
}

// Ecosystem returns the ecosystem tag stamped into graph metadata for
// this format. Both React formats share one ecosystem.
func (f Format) Ecosystem() string {
	switch f {
	case FormatReact, FormatReactLegacy:
		return "react"
	case FormatJava:
		return "java"
	case FormatDjango:
		return "django"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }

// ParseFormat converts a user-supplied format name (e.g. a CLI flag
// value) to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatReact, FormatReactLegacy, FormatJava, FormatDjango:
		return Format(s), nil
	default:
		return FormatUnknown, errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (supported: react, react-legacy, java, django)", s)
	}
}
