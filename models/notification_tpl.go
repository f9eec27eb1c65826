package models

import "fmt"

type NotificationCode string

type NotificationTpl struct {
	Title string
	Msg   string
}

const (
	NotifyApplicantWelcome NotificationCode = "ApplicantWelcome"
	NotifyEmployerWelcome  NotificationCode = "EmployerWelcome"
	NotifyStatusChanged    NotificationCode = "StatusChanged"
	NotifyInvitation       NotificationCode = "Invitation"
	NotifyInviteAccepted   NotificationCode = "InviteAccepted"
	NotifyInviteDeclined   NotificationCode = "InviteDeclined"
)

var NotificationTplMap = map[NotificationCode]NotificationTpl{
	NotifyApplicantWelcome: {Title: "Добро пожаловать!", Msg: "Добавьте образование и опыт, чтобы раскрыть свой потенциал."},
	NotifyEmployerWelcome:  {Title: "Создайте первую вакансию", Msg: "Активная вакансия привлекает кандидатов уже сегодня."},
	NotifyStatusChanged:    {Title: "Изменение статуса отклика", Msg: "Ваш отклик на вакансию #%v теперь имеет статус «%v»."},
	NotifyInvitation:       {Title: "Приглашение на собеседование", Msg: "Работодатель пригласил вас на вакансию «%v». Свяжитесь для выбора даты встречи."},
	NotifyInviteAccepted:   {Title: "Кандидат принял приглашение", Msg: "Соискатель %v принял приглашение по вакансии «%v»."},
	NotifyInviteDeclined:   {Title: "Кандидат отказался от приглашения", Msg: "Соискатель %v отклонил приглашение по вакансии «%v»."},
}

// Render возвращает заголовок и текст уведомления с подставленными значениями
func (c NotificationCode) Render(args ...any) (title, msg string) {
	tpl, ok := NotificationTplMap[c]
	if !ok {
		return string(c), ""
	}
	if len(args) == 0 {
		return tpl.Title, tpl.Msg
	}
	return tpl.Title, fmt.Sprintf(tpl.Msg, args...)
}
