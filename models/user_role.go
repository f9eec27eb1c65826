package models

type UserRole string

const (
	ApplicantRole UserRole = "APPLICANT"
	EmployerRole  UserRole = "EMPLOYER"
	AdminRole     UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	ApplicantRole: "Соискатель",
	EmployerRole:  "Работодатель",
	AdminRole:     "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Система"
