// Package storage implements the moderation collaborator interfaces on
// GORM/Postgres, plus the Redis-backed suspension status cache.
package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/gorm"
)

type Reports struct {
	db *gorm.DB
}

func NewReports(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

func (r *Reports) Save(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *Reports) GetByID(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, moderation.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *Reports) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

func (r *Reports) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Report{}, "id = ?", id).Error
}

func (r *Reports) GetByContent(contentID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("content_id = ? AND comment_id IS NULL", contentID).Find(&reports).Error
	return reports, err
}

func (r *Reports) GetByComment(commentID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("comment_id = ?", commentID).Find(&reports).Error
	return reports, err
}

func (r *Reports) GetByReporterAndContent(reporterID, contentID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("reporter_id = ? AND content_id = ? AND comment_id IS NULL", reporterID, contentID).
		Find(&reports).Error
	return reports, err
}

func (r *Reports) GetByReporterAndComment(reporterID, commentID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("reporter_id = ? AND comment_id = ?", reporterID, commentID).
		Find(&reports).Error
	return reports, err
}

func (r *Reports) GetByReporter(reporterID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("reporter_id = ?", reporterID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *Reports) GetWithFilters(f moderation.ReportFilters) ([]models.Report, error) {
	query := r.db.Model(&models.Report{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		query = query.Where("priority = ?", f.Priority)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	var reports []models.Report
	err := query.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *Reports) GetAll() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Order("created_at DESC").Find(&reports).Error
	return reports, err
}
