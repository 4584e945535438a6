package rbtree

// Case identifies one state of the insert fixup.
type Case uint8

const (
	CaseRoot        Case = iota // node is the root: paint it black
	CaseBlackParent             // nothing to repair
	CaseRedUncle                // recolor and move two levels up
	CaseBent                    // zig-zag: rotate at the parent
	CaseLine                    // straight line: rotate at the grandparent

	NumCases = int(CaseLine) + 1
)

var caseNames = [NumCases]string{
	"root",
	"black-parent",
	"red-uncle",
	"bent",
	"line",
}

func (c Case) String() string {
	if int(c) < NumCases {
		return caseNames[c]
	}
	return "unknown"
}

// Stats counts the work done by Insert since the tree was built.
// Clear does not reset it.
type Stats struct {
	Inserts        uint64
	LeftRotations  uint64
	RightRotations uint64
	Cases          [NumCases]uint64
}

// Rotations is the total of left and right rotations.
func (s Stats) Rotations() uint64 {
	return s.LeftRotations + s.RightRotations
}
