package models

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentProject    EmploymentType = "project"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

var employmentHumanName = map[EmploymentType]string{
	EmploymentFullTime:   "Полная занятость",
	EmploymentPartTime:   "Частичная занятость",
	EmploymentProject:    "Проектная работа",
	EmploymentInternship: "Стажировка",
	EmploymentTemporary:  "Временная работа",
}

func (e EmploymentType) ToHuman() string {
	if human, exist := employmentHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e EmploymentType) IsValid() bool {
	_, exist := employmentHumanName[e]
	return exist
}

type ScheduleType string

const (
	ScheduleRemote   ScheduleType = "remote"
	ScheduleHybrid   ScheduleType = "hybrid"
	ScheduleOffice   ScheduleType = "office"
	ScheduleShift    ScheduleType = "shift"
	ScheduleFlexible ScheduleType = "flexible"
)

var scheduleHumanName = map[ScheduleType]string{
	ScheduleRemote:   "Удалённо",
	ScheduleHybrid:   "Гибрид",
	ScheduleOffice:   "Офис",
	ScheduleShift:    "Сменный график",
	ScheduleFlexible: "Гибкий график",
}

func (s ScheduleType) ToHuman() string {
	if human, exist := scheduleHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ScheduleType) IsValid() bool {
	_, exist := scheduleHumanName[s]
	return exist
}
