package layout

import (
	"strconv"
	"strings"
)

// Length is a CSS length. A number is a pixel length; a raw string such as
// "50%" or "10em" is passed through verbatim. The zero value is unset.
type Length struct {
	px  float64
	raw string
	set bool
}

// Px returns a pixel length.
func Px(v float64) Length {
	return Length{px: v, set: true}
}

// Raw returns a literal CSS size that is emitted unchanged. An empty or
// blank string yields an unset Length.
func Raw(s string) Length {
	if strings.TrimSpace(s) == "" {
		return Length{}
	}
	return Length{raw: s, set: true}
}

// Percent returns a percentage of the containing block.
func Percent(v float64) Length {
	return Raw(strconv.FormatFloat(v, 'f', -1, 64) + "%")
}

// IsSet reports whether the length carries a value.
func (l Length) IsSet() bool {
	return l.set
}

// CSS renders the length as a style value: "70px" for Px(70), the literal
// for Raw values and "" when unset.
func (l Length) CSS() string {
	if !l.set {
		return ""
	}
	if l.raw != "" {
		return l.raw
	}
	return strconv.FormatFloat(l.px, 'f', -1, 64) + "px"
}

func (l Length) String() string {
	if !l.set {
		return "unset"
	}
	return l.CSS()
}
