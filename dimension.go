package restable

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Complex-value radix and unit encoding for dimension/fraction BinaryPrimitives, matching the platform's packed
// 32-bit format: data = (mantissa << 8) | (radix << 4) | unit.
const (
	complexUnitMask  = 0x0f
	complexRadixMask = 0x03
	complexRadixShift = 4
	complexMantissaShift = 8

	complexRadix23p0 = 0
	complexRadix16p7 = 1
	complexRadix8p15 = 2
	complexRadix0p23 = 3

	ComplexUnitPx = 0
	ComplexUnitDip = 1
	ComplexUnitSp = 2
	ComplexUnitPt = 3
	ComplexUnitIn = 4
	ComplexUnitMm = 5

	ComplexUnitFraction       = 0
	ComplexUnitFractionParent = 1
)

var dimensionUnitSuffixes = map[string]uint32{
	"px": ComplexUnitPx,
	"dp": ComplexUnitDip,
	"dip": ComplexUnitDip,
	"sp": ComplexUnitSp,
	"pt": ComplexUnitPt,
	"in": ComplexUnitIn,
	"mm": ComplexUnitMm,
}

var fractionUnitSuffixes = map[string]uint32{
	"%":  ComplexUnitFraction,
	"%p": ComplexUnitFractionParent,
}

// encodeComplex packs value into the platform's radix+mantissa scheme, choosing the radix that best preserves
// precision within the 24-bit mantissa the way the original encoder does: the smallest radix (most fraction
// bits) whose integer-bit field still covers value's magnitude, falling back to the most integral radix only
// once value is too large for any fractional radix to hold.
func encodeComplex(value float64, unit uint32) uint32 {
	neg := value < 0
	if neg {
		value = -value
	}

	var radix uint32
	var mantissa int64

	switch {
	case value < 1:
		radix = complexRadix0p23
		mantissa = int64(math.Round(value * (1 << 23)))
	case value < float64(1<<8):
		radix = complexRadix8p15
		mantissa = int64(math.Round(value * (1 << 15)))
	case value < float64(1<<16):
		radix = complexRadix16p7
		mantissa = int64(math.Round(value * (1 << 7)))
	default:
		radix = complexRadix23p0
		mantissa = int64(math.Round(value))
	}

	if mantissa > 0xffffff {
		mantissa = 0xffffff
	}

	if neg {
		mantissa = -mantissa
	}

	data := (uint32(mantissa) << complexMantissaShift) | (radix << complexRadixShift) | (unit & complexUnitMask)
	return data
}

// decodeComplex is the inverse of encodeComplex, used by tests to assert round-tripping.
func decodeComplex(data uint32) (value float64, unit uint32) {
	mantissa := int32(data) >> complexMantissaShift
	radix := (data >> complexRadixShift) & complexRadixMask
	unit = data & complexUnitMask

	switch radix {
	case complexRadix23p0:
		value = float64(mantissa)
	case complexRadix16p7:
		value = float64(mantissa) / (1 << 7)
	case complexRadix8p15:
		value = float64(mantissa) / (1 << 15)
	default:
		value = float64(mantissa) / (1 << 23)
	}

	return value, unit
}

var dimensionRe = regexp.MustCompile(`^(-?[0-9]*\.?[0-9]+)(px|dip|dp|sp|pt|in|mm)$`)
var fractionRe = regexp.MustCompile(`^(-?[0-9]*\.?[0-9]+)(%p|%)$`)

// ParseDimension parses an Android-style dimension literal like "16dp" or "-2.5mm" into a BinaryPrimitive
// carrying the packed complex-value encoding.
func ParseDimension(text string) (*BinaryPrimitive, error) {
	m := dimensionRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, fmt.Errorf("restable: %q is not a valid dimension", text)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("restable: %q is not a valid dimension: %w", text, err)
	}

	unit := dimensionUnitSuffixes[m[2]]
	return NewBinaryPrimitive(DataTypeDimension, encodeComplex(n, unit)), nil
}

// ParseFraction parses an Android-style fraction literal like "50%" or "150%p" into a BinaryPrimitive.
func ParseFraction(text string) (*BinaryPrimitive, error) {
	m := fractionRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, fmt.Errorf("restable: %q is not a valid fraction", text)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("restable: %q is not a valid fraction: %w", text, err)
	}

	unit := fractionUnitSuffixes[m[2]]
	return NewBinaryPrimitive(DataTypeFraction, encodeComplex(n/100.0, unit)), nil
}

// ParseFloatValue parses a bare locale-aware decimal literal (no unit) into a BinaryPrimitive using the
// platform's 32-bit IEEE-754 float encoding, honoring the decimal separator convention of tag.
func ParseFloatValue(tag language.Tag, text string) (*BinaryPrimitive, error) {
	text = strings.TrimSpace(text)
	if sep := decimalSeparator(tag); sep == ',' {
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	}

	n, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return nil, fmt.Errorf("restable: %q is not a valid float: %w", text, err)
	}

	return NewBinaryPrimitive(DataTypeFloat, math.Float32bits(float32(n))), nil
}

// decimalSeparator reports the decimal separator convention for tag's base language: most European
// languages use a comma, everyone else a dot.
func decimalSeparator(tag language.Tag) byte {
	base, _ := tag.Base()
	switch base.String() {
	case "de", "fr", "es", "it", "pt", "nl", "sv", "no", "da", "fi", "ru", "pl", "cs", "sk", "hu", "tr":
		return ','
	default:
		return '.'
	}
}
