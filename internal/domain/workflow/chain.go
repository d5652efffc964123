package workflow

// Stage describes one sign-off slot in the approval route. Approvers are
// matched by (Department, GradeLevel), not by name, so staffing changes
// need no data migration.
type Stage struct {
	Role       string
	Department string
	GradeLevel string
}

// Chain is the ordered approval route. It is fixed at process start and
// never mutated at runtime; usecases receive it by value.
type Chain []Stage

// DefaultChain is the portal's standing opex/capex (and leave) route.
var DefaultChain = Chain{
	{Role: "Admin Manager", Department: "Admin", GradeLevel: "Manager"},
	{Role: "Finance Manager", Department: "Finance", GradeLevel: "Manager"},
	{Role: "HR Manager", Department: "HR", GradeLevel: "Manager"},
	{Role: "Managing Director", Department: "Executive", GradeLevel: "MD"},
}

// IsEligibleApprover reports whether p may act on s's current stage.
// Fails closed: a terminal request or an out-of-range stage index is
// never actionable.
func (c Chain) IsEligibleApprover(s State, p Principal) bool {
	if s.FinalStatus != StatusPending {
		return false
	}
	if s.CurrentStage < 0 || s.CurrentStage >= len(c) {
		return false
	}
	st := c[s.CurrentStage]
	return p.Department == st.Department && p.GradeLevel == st.GradeLevel
}
