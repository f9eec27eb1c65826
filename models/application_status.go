package models

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusInvited  ApplicationStatus = "invited"
	ApplicationStatusRejected ApplicationStatus = "rejected"
	ApplicationStatusHired    ApplicationStatus = "hired"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusInvited:  "приглашён",
	ApplicationStatusRejected: "отклонён",
	ApplicationStatusHired:    "трудоустроен",
}

// ToHuman все статусы кроме известных считаются "на рассмотрении"
func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return "на рассмотрении"
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusInvited, ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// InviteDecision ответ кандидата на приглашение
type InviteDecision string

const (
	InviteAccept  InviteDecision = "accept"
	InviteDecline InviteDecision = "decline"
)

func (d InviteDecision) IsValid() bool {
	return d == InviteAccept || d == InviteDecline
}

func (d InviteDecision) ToStatus() ApplicationStatus {
	if d == InviteAccept {
		return ApplicationStatusHired
	}
	return ApplicationStatusRejected
}
