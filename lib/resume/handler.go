package resumehandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"job-board-backend/db"
	resumestore "job-board-backend/lib/resume/store"
	systemloghandler "job-board-backend/lib/system-log"
	userstore "job-board-backend/lib/users/store"
	initchecker "job-board-backend/lib/utils/init-checker"
	viewrefresh "job-board-backend/lib/view-refresh"
	"job-board-backend/models"
	resumeapimodels "job-board-backend/models/api/resume"
	dbmodels "job-board-backend/models/db"
)

const (
	defaultPosition = "Специалист"
	searchLimit     = 30
)

var ErrResumeNotFound = models.NewNotFoundError("Резюме не найдено")

type Provider interface {
	// GetOrCreate резюме соискателя, пустое создаётся при первом обращении
	GetOrCreate(userID string) (resume resumeapimodels.ResumeView, err error)
	Get(id string) (resume resumeapimodels.ResumeView, err error)
	Save(userID string, data resumeapimodels.ResumeData) (resume resumeapimodels.ResumeView, err error)
	Search(filter resumeapimodels.SearchFilter) (list []resumeapimodels.ResumeView, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"systemloghandler", systemloghandler.Instance,
		"viewrefresh", viewrefresh.Instance,
	)
	Instance = NewInstance(db.DB, systemloghandler.Instance, viewrefresh.Instance)
}

func NewInstance(DB *gorm.DB, auditor systemloghandler.Provider, refresher viewrefresh.Provider) Provider {
	return impl{
		db:        DB,
		store:     resumestore.NewInstance(DB),
		auditor:   auditor,
		refresher: refresher,
	}
}

type impl struct {
	db        *gorm.DB
	store     resumestore.Provider
	auditor   systemloghandler.Provider
	refresher viewrefresh.Provider
}

func (i impl) GetOrCreate(userID string) (resumeapimodels.ResumeView, error) {
	logger := log.WithField("user_id", userID)
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения резюме")
		return resumeapimodels.ResumeView{}, err
	}
	if rec == nil {
		_, err = i.store.Create(dbmodels.Resume{
			UserID:          userID,
			DesiredPosition: defaultPosition,
		})
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WithError(err).Error("ошибка создания резюме")
			return resumeapimodels.ResumeView{}, err
		}
		logger.Info("создано пустое резюме")
		rec, err = i.store.GetByUserID(userID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения резюме")
			return resumeapimodels.ResumeView{}, err
		}
	}
	return i.Get(rec.ID)
}

func (i impl) Get(id string) (resumeapimodels.ResumeView, error) {
	rec, err := i.store.GetFull(id)
	if err != nil {
		log.WithError(err).WithField("resume_id", id).Error("ошибка получения резюме")
		return resumeapimodels.ResumeView{}, err
	}
	if rec == nil {
		return resumeapimodels.ResumeView{}, ErrResumeNotFound
	}
	return resumeapimodels.ResumeConvert(*rec), nil
}

func (i impl) Save(userID string, data resumeapimodels.ResumeData) (resumeapimodels.ResumeView, error) {
	logger := log.WithField("user_id", userID)
	var resumeID string
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := resumestore.NewInstance(tx)
		rec, err := store.GetByUserID(userID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения резюме")
		}
		if rec == nil {
			resumeID, err = store.Create(dbmodels.Resume{UserID: userID, DesiredPosition: defaultPosition})
			if err != nil {
				return errors.Wrap(err, "ошибка создания резюме")
			}
		} else {
			resumeID = rec.ID
		}
		updMap := map[string]interface{}{
			"desired_position": strings.TrimSpace(data.DesiredPosition),
			"city":             strings.TrimSpace(data.City),
			"summary":          data.Summary,
			"salary":           data.Salary,
			"employment_type":  data.EmploymentType,
			"skills":           datatypes.JSONSlice[string](data.Skills),
		}
		err = store.Update(resumeID, updMap)
		if err != nil {
			return errors.Wrap(err, "ошибка обновления резюме")
		}
		err = store.ReplaceEducation(resumeID, educationConvert(data.Education))
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения образования")
		}
		experience, err := experienceConvert(data.Experience)
		if err != nil {
			return err
		}
		err = store.ReplaceExperience(resumeID, experience)
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения опыта работы")
		}
		user, err := userstore.NewInstance(tx).GetByID(userID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения пользователя")
		}
		email := ""
		if user != nil {
			email = user.Email
		}
		return i.auditor.Write(tx, "Обновлено резюме", email)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения резюме")
		var domainErr *models.DomainError
		if errors.As(err, &domainErr) {
			return resumeapimodels.ResumeView{}, domainErr
		}
		return resumeapimodels.ResumeView{}, errors.New("ошибка сохранения резюме")
	}
	logger.WithField("resume_id", resumeID).Info("резюме обновлено")
	i.refresher.Refresh([]models.ViewName{models.ApplicantDashboardView, models.ResumeView}, userID)
	return i.Get(resumeID)
}

func (i impl) Search(filter resumeapimodels.SearchFilter) ([]resumeapimodels.ResumeView, error) {
	recList, err := i.store.Search(filter, searchLimit)
	if err != nil {
		log.WithError(err).Error("ошибка поиска резюме")
		return nil, errors.New("ошибка поиска резюме")
	}
	now := time.Now()
	result := make([]resumeapimodels.ResumeView, 0, len(recList))
	for _, rec := range recList {
		if !filter.MatchExperience(rec.ExperienceYears(now)) {
			continue
		}
		result = append(result, resumeapimodels.ResumeConvert(rec))
	}
	return result, nil
}

func educationConvert(list []resumeapimodels.EducationData) []dbmodels.Education {
	result := make([]dbmodels.Education, 0, len(list))
	for _, item := range list {
		result = append(result, dbmodels.Education{
			Institution: strings.TrimSpace(item.Institution),
			Degree:      item.Degree,
			Field:       item.Field,
			StartYear:   item.StartYear,
			EndYear:     item.EndYear,
		})
	}
	return result
}

func experienceConvert(list []resumeapimodels.ExperienceData) ([]dbmodels.Experience, error) {
	result := make([]dbmodels.Experience, 0, len(list))
	for idx, item := range list {
		start, err := resumeapimodels.ParseDate(item.StartDate)
		if err != nil {
			return nil, models.NewInvalidError(fmt.Sprintf("experience[%v]: неверная дата начала", idx))
		}
		end, err := resumeapimodels.ParseDate(item.EndDate)
		if err != nil {
			return nil, models.NewInvalidError(fmt.Sprintf("experience[%v]: неверная дата окончания", idx))
		}
		result = append(result, dbmodels.Experience{
			Company:     strings.TrimSpace(item.Company),
			Position:    strings.TrimSpace(item.Position),
			StartDate:   start,
			EndDate:     end,
			Description: item.Description,
		})
	}
	return result, nil
}
