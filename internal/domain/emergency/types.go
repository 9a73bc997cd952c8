package emergency

import "slices"

type Type string

const (
	TypeTrauma       Type = "trauma"
	TypeCardiac      Type = "cardiac"
	TypeRespiratory  Type = "respiratory"
	TypeNeurological Type = "neurological"
	TypeOther        Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeTrauma, TypeCardiac, TypeRespiratory, TypeNeurological, TypeOther:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityMild     Severity = "mild"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeveritySevere, SeverityModerate, SeverityMild:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending     Status = "pending"
	StatusInProgress  Status = "in-progress"
	StatusStabilized  Status = "stabilized"
	StatusDischarged  Status = "discharged"
	StatusTransferred Status = "transferred"
)

var transitions = map[Status][]Status{
	StatusPending:     {StatusInProgress, StatusTransferred},
	StatusInProgress:  {StatusStabilized, StatusTransferred, StatusDischarged},
	StatusStabilized:  {StatusInProgress, StatusDischarged, StatusTransferred},
	StatusDischarged:  {},
	StatusTransferred: {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsClosed() bool {
	return s == StatusDischarged || s == StatusTransferred
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}
