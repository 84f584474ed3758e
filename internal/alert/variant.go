package alert

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is wrapped by ParseVariant and ParsePosition when the input
// names no known value.
var ErrUnknownValue = errors.New("unknown value")

// Variant selects how an alert is presented. It never affects lifecycle.
type Variant int

// The zero value is VariantInfo, the default for Show and Update.
const (
	VariantInfo Variant = iota
	VariantSuccess
	VariantError
	VariantWarning
	VariantUpload

	numVariants = iota
)

var variantNames = [numVariants]string{
	VariantInfo:    "info",
	VariantSuccess: "success",
	VariantError:   "error",
	VariantWarning: "warning",
	VariantUpload:  "upload",
}

// String returns the lowercase name used in configuration and logs.
func (v Variant) String() string {
	if v < 0 || int(v) >= numVariants {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v >= 0 && int(v) < numVariants
}

// ParseVariant converts a name such as "warning" into a Variant.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return VariantInfo, fmt.Errorf("variant %q: %w", s, ErrUnknownValue)
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, numVariants)
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

// Position is the screen corner an alert is stacked in.
type Position int

// The zero value is PositionTopRight, the default for Show.
const (
	PositionTopRight Position = iota
	PositionBottomRight
	PositionBottomLeft
	PositionTopLeft

	numPositions = iota
)

var positionNames = [numPositions]string{
	PositionTopRight:    "top-right",
	PositionBottomRight: "bottom-right",
	PositionBottomLeft:  "bottom-left",
	PositionTopLeft:     "top-left",
}

func (p Position) String() string {
	if p < 0 || int(p) >= numPositions {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// Valid reports whether p is one of the four corners.
func (p Position) Valid() bool {
	return p >= 0 && int(p) < numPositions
}

// ParsePosition converts a name such as "bottom-left" into a Position.
func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if name == s {
			return Position(i), nil
		}
	}
	return PositionTopRight, fmt.Errorf("position %q: %w", s, ErrUnknownValue)
}

// Positions returns the four corners in group order.
func Positions() []Position {
	out := make([]Position, numPositions)
	for i := range out {
		out[i] = Position(i)
	}
	return out
}
