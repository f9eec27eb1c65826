package authhandler

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	notificationhandler "job-board-backend/lib/notification"
	systemloghandler "job-board-backend/lib/system-log"
	testdb "job-board-backend/lib/utils/test-db"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	authapimodels "job-board-backend/models/api/auth"
	dbmodels "job-board-backend/models/db"
)

const testSecret = "test-secret"

func newHandler(t *testing.T) (Provider, *gorm.DB) {
	db := testdb.New(t)
	handler := NewInstance(db,
		notificationhandler.NewInstance(db, nil, nil),
		systemloghandler.NewInstance(db),
		viewrefresh.NewInstance(time.Minute, nil),
		testSecret, time.Hour)
	return handler, db
}

func applicantData() authapimodels.ApplicantRegister {
	return authapimodels.ApplicantRegister{
		LastName:        "Иванов",
		FirstName:       "Иван",
		Email:           "ivanov@mail.ru",
		Phone:           "+79990001122",
		Password:        "secret1",
		DesiredPosition: "Аналитик",
	}
}

func TestRegisterApplicant(t *testing.T) {
	t.Run(`registration creates user resume and welcome`, func(t *testing.T) {
		handler, db := newHandler(t)
		id, err := handler.RegisterApplicant(applicantData())
		require.NoError(t, err)

		user := dbmodels.User{}
		require.NoError(t, db.Where("id = ?", id).First(&user).Error)
		require.Equal(t, models.ApplicantRole, user.Role)
		require.NotEqual(t, "secret1", user.Password)

		resume := dbmodels.Resume{}
		require.NoError(t, db.Where("user_id = ?", id).First(&resume).Error)
		require.Equal(t, "Аналитик", resume.DesiredPosition)

		notifications := []dbmodels.Notification{}
		require.NoError(t, db.Where("user_id = ?", id).Find(&notifications).Error)
		require.Len(t, notifications, 1)
		require.Equal(t, "Добро пожаловать!", notifications[0].Title)

		logs := []dbmodels.SystemLog{}
		require.NoError(t, db.Find(&logs).Error)
		require.Len(t, logs, 1)
		require.Equal(t, "Регистрация соискателя", logs[0].Action)
		require.Equal(t, "ivanov@mail.ru", logs[0].UserEmail)
	})

	t.Run(`email already taken`, func(t *testing.T) {
		handler, db := newHandler(t)
		_, err := handler.RegisterApplicant(applicantData())
		require.NoError(t, err)
		_, err = handler.RegisterApplicant(applicantData())
		require.ErrorIs(t, err, ErrEmailTaken)

		var cnt int64
		require.NoError(t, db.Model(&dbmodels.Resume{}).Count(&cnt).Error)
		require.Equal(t, int64(1), cnt)
	})
}

func TestRegisterEmployer(t *testing.T) {
	t.Run(`registration creates company`, func(t *testing.T) {
		handler, db := newHandler(t)
		id, err := handler.RegisterEmployer(authapimodels.EmployerRegister{
			CompanyName: "Ромашка",
			Inn:         "7701234567",
			Email:       "hr@romashka.ru",
			Phone:       "+74950001122",
			Password:    "secret1",
		})
		require.NoError(t, err)

		company := dbmodels.Company{}
		require.NoError(t, db.Where("user_id = ?", id).First(&company).Error)
		require.Equal(t, "Ромашка", company.Name)
		require.Equal(t, "7701234567", company.Inn)

		notifications := []dbmodels.Notification{}
		require.NoError(t, db.Where("user_id = ?", id).Find(&notifications).Error)
		require.Len(t, notifications, 1)
		require.Equal(t, "Создайте первую вакансию", notifications[0].Title)

		logs := []dbmodels.SystemLog{}
		require.NoError(t, db.Find(&logs).Error)
		require.Len(t, logs, 1)
		require.Equal(t, "Регистрация работодателя", logs[0].Action)
	})
}

func TestLogin(t *testing.T) {
	handler, _ := newHandler(t)
	id, err := handler.RegisterApplicant(applicantData())
	require.NoError(t, err)

	t.Run(`login by email`, func(t *testing.T) {
		resp, err := handler.Login("IVANOV@mail.ru", "secret1")
		require.NoError(t, err)
		require.Equal(t, id, resp.User.ID)
		require.Equal(t, models.ApplicantRole, resp.User.Role)
		require.Equal(t, "Иванов Иван", resp.User.FullName)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, id, claims["sub"])
		require.Equal(t, string(models.ApplicantRole), claims["role"])
	})

	t.Run(`login by phone`, func(t *testing.T) {
		resp, err := handler.Login("+79990001122", "secret1")
		require.NoError(t, err)
		require.Equal(t, id, resp.User.ID)
	})

	t.Run(`wrong password`, func(t *testing.T) {
		_, err := handler.Login("ivanov@mail.ru", "wrong")
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run(`unknown user`, func(t *testing.T) {
		_, err := handler.Login("nobody@mail.ru", "secret1")
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run(`me`, func(t *testing.T) {
		me, err := handler.Me(id)
		require.NoError(t, err)
		require.Equal(t, "ivanov@mail.ru", me.Email)

		_, err = handler.Me("missing")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
