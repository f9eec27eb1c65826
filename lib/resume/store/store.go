package resumestore

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	resumeapimodels "job-board-backend/models/api/resume"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Resume) (id string, err error)
	GetByID(id string) (rec *dbmodels.Resume, err error)
	GetByUserID(userID string) (rec *dbmodels.Resume, err error)
	GetFull(id string) (rec *dbmodels.Resume, err error)
	Update(id string, updMap map[string]interface{}) error
	ReplaceEducation(resumeID string, list []dbmodels.Education) error
	ReplaceExperience(resumeID string, list []dbmodels.Experience) error
	Search(filter resumeapimodels.SearchFilter, limit int) (list []dbmodels.Resume, err error)
	ListByUserIDs(userIDs []string) (list []dbmodels.Resume, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Resume) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Resume, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetByUserID(userID string) (*dbmodels.Resume, error) {
	return i.first(i.db.Where("user_id = ?", userID))
}

func (i impl) GetFull(id string) (*dbmodels.Resume, error) {
	return i.first(i.preloadFull(i.db).Where("id = ?", id))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.Resume, error) {
	rec := dbmodels.Resume{}
	err := tx.
		Model(&dbmodels.Resume{}).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) preloadFull(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_year asc")
		}).
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date asc")
		})
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Resume{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ReplaceEducation(resumeID string, list []dbmodels.Education) error {
	err := i.db.
		Where("resume_id = ?", resumeID).
		Delete(&dbmodels.Education{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления образования")
	}
	if len(list) == 0 {
		return nil
	}
	for idx := range list {
		list[idx].ResumeID = resumeID
	}
	return i.db.Create(&list).Error
}

func (i impl) ReplaceExperience(resumeID string, list []dbmodels.Experience) error {
	err := i.db.
		Where("resume_id = ?", resumeID).
		Delete(&dbmodels.Experience{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления опыта работы")
	}
	if len(list) == 0 {
		return nil
	}
	for idx := range list {
		list[idx].ResumeID = resumeID
	}
	return i.db.Create(&list).Error
}

// Search фильтр по опыту применяется вызывающей стороной, т.к. опыт вычисляется по датам
func (i impl) Search(filter resumeapimodels.SearchFilter, limit int) (list []dbmodels.Resume, err error) {
	tx := i.preloadFull(i.db).Model(&dbmodels.Resume{})
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		pattern := "%" + q + "%"
		skill, _ := json.Marshal(q)
		tx = tx.Where("(LOWER(desired_position) LIKE ? OR LOWER(summary) LIKE ? OR LOWER(CAST(skills AS TEXT)) LIKE ?)",
			pattern, pattern, "%"+string(skill)+"%")
	}
	if profession := strings.ToLower(strings.TrimSpace(filter.Profession)); profession != "" {
		tx = tx.Where("LOWER(desired_position) LIKE ?", "%"+profession+"%")
	}
	list = []dbmodels.Resume{}
	err = tx.
		Order("updated_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUserIDs(userIDs []string) (list []dbmodels.Resume, err error) {
	list = []dbmodels.Resume{}
	if len(userIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Model(&dbmodels.Resume{}).
		Where("user_id in (?)", userIDs).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
