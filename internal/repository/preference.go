package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// MyJobPreferenceRepository mediates preference persistence. Preferences
// belong to exactly one profile and one user.
type MyJobPreferenceRepository interface {
	GetByUser(ctx context.Context, userID uint) ([]model.MyJobPreference, error)
	GetByProfile(ctx context.Context, profileID, userID uint) ([]model.MyJobPreference, error)
	GetByID(ctx context.Context, id, userID uint) (*model.MyJobPreference, error)
	GetByWorkModel(ctx context.Context, userID uint, workModel model.WorkModel) ([]model.MyJobPreference, error)
	GetByContract(ctx context.Context, userID uint, contract model.ContractType) ([]model.MyJobPreference, error)
	GetPaged(ctx context.Context, userID uint, page, pageSize int) ([]model.MyJobPreference, error)
	Add(ctx context.Context, pref *model.MyJobPreference) error
	Update(ctx context.Context, pref *model.MyJobPreference) error
	Delete(ctx context.Context, id, userID uint) (bool, error)
	Count(ctx context.Context, userID uint) (int64, error)
}

type gormMyJobPreferenceRepository struct {
	db    *gorm.DB
	clock model.Clock
}

// NewMyJobPreferenceRepository returns the GORM-backed MyJobPreferenceRepository.
func NewMyJobPreferenceRepository(db *gorm.DB, clock model.Clock) MyJobPreferenceRepository {
	return &gormMyJobPreferenceRepository{db: db, clock: clock}
}

// preferences list alphabetically, newest first within a title.
func (r *gormMyJobPreferenceRepository) ordered(db *gorm.DB) *gorm.DB {
	return db.Order("title ASC").Order("created_at DESC")
}

func (r *gormMyJobPreferenceRepository) GetByUser(ctx context.Context, userID uint) ([]model.MyJobPreference, error) {
	var prefs []model.MyJobPreference
	err := r.ordered(r.db.WithContext(ctx).Where("user_id = ?", userID)).Find(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return prefs, nil
}

func (r *gormMyJobPreferenceRepository) GetByProfile(ctx context.Context, profileID, userID uint) ([]model.MyJobPreference, error) {
	var prefs []model.MyJobPreference
	err := r.ordered(r.db.WithContext(ctx).
		Where("my_profile_id = ? AND user_id = ?", profileID, userID)).
		Find(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return prefs, nil
}

func (r *gormMyJobPreferenceRepository) GetByID(ctx context.Context, id, userID uint) (*model.MyJobPreference, error) {
	var pref model.MyJobPreference
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&pref).Error
	if err != nil {
		return nil, translate(err)
	}
	return &pref, nil
}

func (r *gormMyJobPreferenceRepository) GetByWorkModel(ctx context.Context, userID uint, workModel model.WorkModel) ([]model.MyJobPreference, error) {
	var prefs []model.MyJobPreference
	err := r.ordered(r.db.WithContext(ctx).
		Where("user_id = ? AND work_model = ?", userID, workModel)).
		Find(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return prefs, nil
}

func (r *gormMyJobPreferenceRepository) GetByContract(ctx context.Context, userID uint, contract model.ContractType) ([]model.MyJobPreference, error) {
	var prefs []model.MyJobPreference
	err := r.ordered(r.db.WithContext(ctx).
		Where("user_id = ? AND contract = ?", userID, contract)).
		Find(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return prefs, nil
}

func (r *gormMyJobPreferenceRepository) GetPaged(ctx context.Context, userID uint, page, pageSize int) ([]model.MyJobPreference, error) {
	page, pageSize = normalizePage(page, pageSize)

	var prefs []model.MyJobPreference
	err := r.ordered(r.db.WithContext(ctx).Where("user_id = ?", userID)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return prefs, nil
}

// Add persists a new preference under an existing profile owned by the
// same user. A preference pointing at a foreign or missing profile is
// rejected as not-found.
func (r *gormMyJobPreferenceRepository) Add(ctx context.Context, pref *model.MyJobPreference) error {
	if pref == nil {
		return ErrNilEntity
	}
	if err := pref.Validate(); err != nil {
		return err
	}

	var owned int64
	if err := r.db.WithContext(ctx).Model(&model.MyProfile{}).
		Where("id = ? AND user_id = ?", pref.MyProfileID, pref.UserID).
		Count(&owned).Error; err != nil {
		return translate(err)
	}
	if owned == 0 {
		return ErrNotFound
	}

	now := r.clock.Now().UTC()
	pref.CreatedAt = now
	pref.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(pref).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormMyJobPreferenceRepository) Update(ctx context.Context, pref *model.MyJobPreference) error {
	if pref == nil {
		return ErrNilEntity
	}
	if err := pref.Validate(); err != nil {
		return err
	}

	existing, err := r.GetByID(ctx, pref.ID, pref.UserID)
	if err != nil {
		return err
	}

	pref.MarkUpdated(r.clock.Now())
	updates := map[string]any{
		"my_profile_id":      pref.MyProfileID,
		"title":              pref.Title,
		"work_model":         pref.WorkModel,
		"contract":           pref.Contract,
		"offer_relocation":   pref.OfferRelocation,
		"offer_sponsorship":  pref.OfferSponsorship,
		"total_compensation": pref.TotalCompensation,
		"notes":              pref.Notes,
		"updated_at":         pref.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Model(&model.MyJobPreference{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return translate(err)
	}

	pref.CreatedAt = existing.CreatedAt
	return nil
}

func (r *gormMyJobPreferenceRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MyJobPreference{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormMyJobPreferenceRepository) Count(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MyJobPreference{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
