package alert

import (
	"errors"
	"testing"
)

func TestVariantRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("ParseVariant(%q) = %v, want %v", v.String(), got, v)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	for _, p := range Positions() {
		got, err := ParsePosition(p.String())
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePosition(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := ParseVariant("fatal"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParseVariant(fatal) err = %v, want ErrUnknownValue", err)
	}
	if _, err := ParsePosition("center"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("ParsePosition(center) err = %v, want ErrUnknownValue", err)
	}
}

func TestPositionsGroupOrder(t *testing.T) {
	want := []string{"top-right", "bottom-right", "bottom-left", "top-left"}
	got := Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() = %v", got)
	}
	for i, p := range got {
		if p.String() != want[i] {
			t.Errorf("Positions()[%d] = %s, want %s", i, p, want[i])
		}
	}
}

func TestOutOfRangeString(t *testing.T) {
	if got := Variant(9).String(); got != "Variant(9)" {
		t.Errorf("Variant(9).String() = %q", got)
	}
	if got := Position(-2).String(); got != "Position(-2)" {
		t.Errorf("Position(-2).String() = %q", got)
	}
}

func TestEveryVariantHasPresentation(t *testing.T) {
	for _, v := range Variants() {
		p := v.Presentation()
		if p.Background == "" || p.Foreground == "" {
			t.Errorf("%s: incomplete presentation %+v", v, p)
		}
	}
	if VariantUpload.Presentation().Border == "" {
		t.Error("upload variant should be bordered")
	}
	if VariantError.Presentation().Border != "" {
		t.Error("error variant should not be bordered")
	}
	if Variant(77).Presentation() != VariantInfo.Presentation() {
		t.Error("unknown variant should fall back to info")
	}
}

func TestStyleRendersMessage(t *testing.T) {
	for _, v := range Variants() {
		if out := v.Style().Render("saved"); out == "" {
			t.Errorf("%s: empty render", v)
		}
	}
}
