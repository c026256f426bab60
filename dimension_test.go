package restable

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		text     string
		wantUnit uint32
	}{
		{"16dp", ComplexUnitDip},
		{"16dip", ComplexUnitDip},
		{"2px", ComplexUnitPx},
		{"1.5sp", ComplexUnitSp},
		{"-2.5mm", ComplexUnitMm},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			bp, err := ParseDimension(tt.text)
			if err != nil {
				t.Fatalf("ParseDimension(%q) error: %v", tt.text, err)
			}

			if bp.DataType != DataTypeDimension {
				t.Errorf("DataType = 0x%02x, want DataTypeDimension", bp.DataType)
			}

			_, unit := decodeComplex(bp.Data)
			if unit != tt.wantUnit {
				t.Errorf("unit = %d, want %d", unit, tt.wantUnit)
			}
		})
	}
}

func TestParseDimension_RoundTrip(t *testing.T) {
	bp, err := ParseDimension("42dp")
	if err != nil {
		t.Fatalf("ParseDimension() error: %v", err)
	}

	value, unit := decodeComplex(bp.Data)
	if value != 42 {
		t.Errorf("decoded value = %v, want 42", value)
	}

	if unit != ComplexUnitDip {
		t.Errorf("decoded unit = %d, want ComplexUnitDip", unit)
	}
}

func TestParseDimension_Invalid(t *testing.T) {
	if _, err := ParseDimension("not a dimension"); err == nil {
		t.Errorf("expected error for invalid dimension text")
	}
}

func TestParseFraction(t *testing.T) {
	bp, err := ParseFraction("50%")
	if err != nil {
		t.Fatalf("ParseFraction() error: %v", err)
	}

	if bp.DataType != DataTypeFraction {
		t.Errorf("DataType = 0x%02x, want DataTypeFraction", bp.DataType)
	}

	value, unit := decodeComplex(bp.Data)
	if math.Abs(value-0.5) > 1e-9 {
		t.Errorf("decoded value = %v, want 0.5", value)
	}

	if unit != ComplexUnitFraction {
		t.Errorf("unit = %d, want ComplexUnitFraction", unit)
	}
}

func TestParseFraction_Parent(t *testing.T) {
	bp, err := ParseFraction("150%p")
	if err != nil {
		t.Fatalf("ParseFraction() error: %v", err)
	}

	_, unit := decodeComplex(bp.Data)
	if unit != ComplexUnitFractionParent {
		t.Errorf("unit = %d, want ComplexUnitFractionParent", unit)
	}
}

func TestParseFloatValue_LocaleDecimalSeparator(t *testing.T) {
	bp, err := ParseFloatValue(language.English, "1.5")
	if err != nil {
		t.Fatalf("ParseFloatValue(en) error: %v", err)
	}

	if got := math.Float32frombits(bp.Data); got != 1.5 {
		t.Errorf("en: got %v, want 1.5", got)
	}

	bp, err = ParseFloatValue(language.German, "1,5")
	if err != nil {
		t.Fatalf("ParseFloatValue(de) error: %v", err)
	}

	if got := math.Float32frombits(bp.Data); got != 1.5 {
		t.Errorf("de: got %v, want 1.5", got)
	}
}

func TestBinaryPrimitive_FlattenRoundTrip(t *testing.T) {
	tests := []struct {
		dataType uint8
		data     uint32
	}{
		{DataTypeIntDec, 12345},
		{DataTypeIntBoolean, 1},
		{DataTypeIntColorARGB8, 0xff00ff00},
	}

	for _, tt := range tests {
		bp := NewBinaryPrimitive(tt.dataType, tt.data)

		rv, err := bp.Flatten()
		if err != nil {
			t.Fatalf("Flatten() error: %v", err)
		}

		back := NewBinaryPrimitive(rv.DataType, rv.Data)
		if back.DataType != tt.dataType || back.Data != tt.data {
			t.Errorf("round trip = (0x%02x, 0x%08x), want (0x%02x, 0x%08x)", back.DataType, back.Data, tt.dataType, tt.data)
		}
	}
}
