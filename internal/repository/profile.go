package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// MyProfileRepository mediates profile persistence. A user owns at most
// one profile; the unique index on user_id enforces that, the repository
// only reports the violation.
type MyProfileRepository interface {
	GetByUser(ctx context.Context, userID uint) (*model.MyProfile, error)
	GetByID(ctx context.Context, id, userID uint) (*model.MyProfile, error)
	Add(ctx context.Context, profile *model.MyProfile) error
	Update(ctx context.Context, profile *model.MyProfile) error
	Delete(ctx context.Context, id, userID uint) (bool, error)
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	Count(ctx context.Context, userID uint) (int64, error)
}

type gormMyProfileRepository struct {
	db    *gorm.DB
	clock model.Clock
}

// NewMyProfileRepository returns the GORM-backed MyProfileRepository.
func NewMyProfileRepository(db *gorm.DB, clock model.Clock) MyProfileRepository {
	return &gormMyProfileRepository{db: db, clock: clock}
}

func (r *gormMyProfileRepository) GetByUser(ctx context.Context, userID uint) (*model.MyProfile, error) {
	var profile model.MyProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *gormMyProfileRepository) GetByID(ctx context.Context, id, userID uint) (*model.MyProfile, error) {
	var profile model.MyProfile
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&profile).Error
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Add persists a new profile. A duplicate for the same user is rejected by
// the unique index and surfaces as ErrConflict; there is no pre-check.
func (r *gormMyProfileRepository) Add(ctx context.Context, profile *model.MyProfile) error {
	if profile == nil {
		return ErrNilEntity
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	now := r.clock.Now().UTC()
	profile.NeedRelocationSupport = profile.NeedRelocationSupport.Normalize()
	profile.NeedSponsorship = profile.NeedSponsorship.Normalize()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormMyProfileRepository) Update(ctx context.Context, profile *model.MyProfile) error {
	if profile == nil {
		return ErrNilEntity
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	existing, err := r.GetByID(ctx, profile.ID, profile.UserID)
	if err != nil {
		return err
	}

	profile.MarkUpdated(r.clock.Now())
	updates := map[string]any{
		"passport":                profile.Passport,
		"need_relocation_support": profile.NeedRelocationSupport.Normalize(),
		"need_sponsorship":        profile.NeedSponsorship.Normalize(),
		"updated_at":              profile.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Model(&model.MyProfile{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return translate(err)
	}

	profile.CreatedAt = existing.CreatedAt
	return nil
}

// Delete removes the profile and, via the FK cascade, every preference
// under it.
func (r *gormMyProfileRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.MyProfile{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	// The sqlite test driver does not run the FK cascade that PostgreSQL
	// applies, so preferences are removed explicitly as well.
	if err := r.db.WithContext(ctx).
		Where("my_profile_id = ?", id).
		Delete(&model.MyJobPreference{}).Error; err != nil {
		return true, translate(err)
	}
	return true, nil
}

func (r *gormMyProfileRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	count, err := r.Count(ctx, userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormMyProfileRepository) Count(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MyProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
