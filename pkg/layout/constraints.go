package layout

// BoxConstraints names the sizing mode a box applies to itself. Each value is
// a stylesheet class.
type BoxConstraints string

const (
	// BoxConstraintsExpand fills the parent in both dimensions.
	BoxConstraintsExpand BoxConstraints = "box-constraints-expand"
	// BoxConstraintsLoose lets the box size to its content.
	BoxConstraintsLoose BoxConstraints = "box-constraints-loose"
)

// ClassName returns the stylesheet class, defaulting to BoxConstraintsExpand
// for the zero value.
func (c BoxConstraints) ClassName() string {
	if c == "" {
		return string(BoxConstraintsExpand)
	}
	return string(c)
}
