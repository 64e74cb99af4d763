package appointment

import "errors"

var ErrInvalidStatus = errors.New("invalid appointment status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the appointment counts toward the monthly ceiling.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Action string

const (
	ActionCancel  Action = "cancel"
	ActionConfirm Action = "confirm"
)

type OwnerKind string

const (
	OwnerUser     OwnerKind = "user"
	OwnerProvider OwnerKind = "provider"
)

func (k OwnerKind) IsValid() bool {
	return k == OwnerUser || k == OwnerProvider
}

// Owner identifies whose appointment list is being looked at.
type Owner struct {
	Kind OwnerKind
	ID   string
}
