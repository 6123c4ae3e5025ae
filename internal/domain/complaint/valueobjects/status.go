package valueobjects

import "fmt"

type Status string

const (
	StatusSubmitted  Status = "Submitted"
	StatusAssigned   Status = "Assigned"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Statuses lists the lifecycle in order.
var Statuses = []Status{
	StatusSubmitted,
	StatusAssigned,
	StatusInProgress,
	StatusResolved,
}

var statusRank = map[Status]int{
	StatusSubmitted:  0,
	StatusAssigned:   1,
	StatusInProgress: 2,
	StatusResolved:   3,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

func (s Status) IsSubmitted() bool {
	return s == StatusSubmitted
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

// CanAdvanceTo reports whether next is the same status or later in the lifecycle.
// Skipping stages is allowed.
func (s Status) CanAdvanceTo(next Status) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return statusRank[next] >= statusRank[s]
}

// IsRegressionTo reports whether moving to next goes back in the lifecycle.
func (s Status) IsRegressionTo(next Status) bool {
	return s.IsValid() && next.IsValid() && statusRank[next] < statusRank[s]
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
