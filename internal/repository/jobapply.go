package repository

import (
	"context"

	"gorm.io/gorm"

	"jobtrack/internal/model"
)

// JobApplyRepository mediates all job application persistence. Every read
// is scoped to the owning user.
type JobApplyRepository interface {
	GetByUser(ctx context.Context, userID uint) ([]model.JobApply, error)
	GetByID(ctx context.Context, id, userID uint) (*model.JobApply, error)
	GetByStatus(ctx context.Context, userID uint, status model.JobStatus) ([]model.JobApply, error)
	GetPaged(ctx context.Context, userID uint, page, pageSize int) ([]model.JobApply, error)
	Add(ctx context.Context, job *model.JobApply) error
	Update(ctx context.Context, job *model.JobApply) error
	Delete(ctx context.Context, id, userID uint) (bool, error)
	Count(ctx context.Context, userID uint) (int64, error)
}

type gormJobApplyRepository struct {
	db    *gorm.DB
	clock model.Clock
}

// NewJobApplyRepository returns the GORM-backed JobApplyRepository.
func NewJobApplyRepository(db *gorm.DB, clock model.Clock) JobApplyRepository {
	return &gormJobApplyRepository{db: db, clock: clock}
}

// applications are listed most recent first, ties broken by creation time.
func (r *gormJobApplyRepository) ordered(db *gorm.DB) *gorm.DB {
	return db.Order("date_of_apply DESC").Order("created_at DESC")
}

func (r *gormJobApplyRepository) GetByUser(ctx context.Context, userID uint) ([]model.JobApply, error) {
	var jobs []model.JobApply
	err := r.ordered(r.db.WithContext(ctx).Where("user_id = ?", userID)).Find(&jobs).Error
	if err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}

func (r *gormJobApplyRepository) GetByID(ctx context.Context, id, userID uint) (*model.JobApply, error) {
	var job model.JobApply
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&job).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *gormJobApplyRepository) GetByStatus(ctx context.Context, userID uint, status model.JobStatus) ([]model.JobApply, error) {
	var jobs []model.JobApply
	err := r.ordered(r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status)).
		Find(&jobs).Error
	if err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}

func (r *gormJobApplyRepository) GetPaged(ctx context.Context, userID uint, page, pageSize int) ([]model.JobApply, error) {
	page, pageSize = normalizePage(page, pageSize)

	var jobs []model.JobApply
	err := r.ordered(r.db.WithContext(ctx).Where("user_id = ?", userID)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}

func (r *gormJobApplyRepository) Add(ctx context.Context, job *model.JobApply) error {
	if job == nil {
		return ErrNilEntity
	}

	now := r.clock.Now().UTC()
	if err := job.Validate(now); err != nil {
		return err
	}

	job.CreatedAt = now
	job.UpdatedAt = nil
	job.DateOfApply = job.DateOfApply.UTC()

	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing application. The
// stored CreatedAt is never touched, so a zero CreatedAt on the incoming
// entity is harmless.
func (r *gormJobApplyRepository) Update(ctx context.Context, job *model.JobApply) error {
	if job == nil {
		return ErrNilEntity
	}

	now := r.clock.Now().UTC()
	if err := job.Validate(now); err != nil {
		return err
	}

	existing, err := r.GetByID(ctx, job.ID, job.UserID)
	if err != nil {
		return err
	}

	job.MarkUpdated(now)
	updates := map[string]any{
		"company_name":      job.CompanyName,
		"company_country":   job.CompanyCountry,
		"job_role":          job.JobRole,
		"job_link":          job.JobLink,
		"date_of_apply":     job.DateOfApply.UTC(),
		"number_of_phases":  job.NumberOfPhases,
		"status":            job.Status,
		"offer_sponsorship": job.OfferSponsorship,
		"offer_relocation":  job.OfferRelocation,
		"notes":             job.Notes,
		"updated_at":        *job.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Model(&model.JobApply{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return translate(err)
	}

	job.CreatedAt = existing.CreatedAt
	return nil
}

func (r *gormJobApplyRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.JobApply{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormJobApplyRepository) Count(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.JobApply{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
