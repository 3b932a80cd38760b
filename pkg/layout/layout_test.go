package layout

import "testing"

func TestLengthCSS(t *testing.T) {
	tests := []struct {
		name string
		l    Length
		want string
	}{
		{"unset", Length{}, ""},
		{"pixels", Px(70), "70px"},
		{"fractional pixels", Px(12.5), "12.5px"},
		{"zero pixels", Px(0), "0px"},
		{"raw percent", Raw("50%"), "50%"},
		{"percent helper", Percent(100), "100%"},
		{"raw em", Raw("3em"), "3em"},
		{"empty raw", Raw(""), ""},
		{"blank raw", Raw("  "), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
	if (Length{}).IsSet() {
		t.Error("zero Length should be unset")
	}
	if Raw("").IsSet() {
		t.Error("Raw(\"\") should be unset")
	}
	if !Px(0).IsSet() {
		t.Error("Px(0) should be set")
	}
}

func TestAlignmentClassName(t *testing.T) {
	want := []string{
		"alignment-top-left",
		"alignment-top-center",
		"alignment-top-right",
		"alignment-center-left",
		"alignment-center",
		"alignment-center-right",
		"alignment-bottom-left",
		"alignment-bottom-center",
		"alignment-bottom-right",
	}
	if len(Alignments) != len(want) {
		t.Fatalf("len(Alignments) = %d, want %d", len(Alignments), len(want))
	}
	for i, a := range Alignments {
		if got := a.ClassName(); got != want[i] {
			t.Errorf("%v.ClassName() = %q, want %q", a, got, want[i])
		}
	}
	if got := Alignment(42).ClassName(); got != "alignment-center" {
		t.Errorf("invalid alignment ClassName() = %q, want alignment-center", got)
	}
	if got := Alignment(42).String(); got != "Alignment(42)" {
		t.Errorf("invalid alignment String() = %q", got)
	}
}

func TestBoxConstraintsClassName(t *testing.T) {
	if got := BoxConstraints("").ClassName(); got != "box-constraints-expand" {
		t.Errorf("zero ClassName() = %q", got)
	}
	if got := BoxConstraintsLoose.ClassName(); got != "box-constraints-loose" {
		t.Errorf("loose ClassName() = %q", got)
	}
}

func TestEdgeInsetsCSS(t *testing.T) {
	tests := []struct {
		in   EdgeInsets
		want string
	}{
		{EdgeInsetsAll(16), "16px"},
		{EdgeInsetsSymmetric(24, 12), "12px 24px"},
		{EdgeInsetsOnly(8, 4, 8, 0), "4px 8px 0px"},
		{EdgeInsetsOnly(1, 2, 3, 4), "2px 3px 4px 1px"},
	}
	for _, tt := range tests {
		if got := tt.in.CSS(); got != tt.want {
			t.Errorf("%+v.CSS() = %q, want %q", tt.in, got, tt.want)
		}
	}
	e := EdgeInsetsOnly(1, 2, 3, 4)
	if e.Horizontal() != 4 || e.Vertical() != 6 {
		t.Errorf("Horizontal/Vertical = %v/%v", e.Horizontal(), e.Vertical())
	}
	if !(EdgeInsets{}).IsZero() || e.IsZero() {
		t.Error("IsZero mismatch")
	}
}
