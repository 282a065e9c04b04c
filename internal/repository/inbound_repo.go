package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InboundRepository interface {
	FindAll() ([]model.InboundRequest, error)
	FindByCreator(userID uuid.UUID) ([]model.InboundRequest, error)
	FindByID(id uuid.UUID) (*model.InboundRequest, error)
	Create(req *model.InboundRequest) error
	// ReplaceContent rewrites header fields and the full item list in one
	// transaction. Callers verify the request is still editable first.
	ReplaceContent(req *model.InboundRequest) error
	UpdateApproval(req *model.InboundRequest) error
	Delete(id uuid.UUID, deletedBy string) error
	CountByStatus(status model.RequestStatus) (int64, error)
}

type inboundRepo struct {
	db *gorm.DB
}

func NewInboundRepo(db *gorm.DB) InboundRepository {
	return &inboundRepo{db}
}

func (r *inboundRepo) FindAll() ([]model.InboundRequest, error) {
	var requests []model.InboundRequest
	err := r.db.Preload("Warehouse").Preload("Items").Preload("Items.Product").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *inboundRepo) FindByCreator(userID uuid.UUID) ([]model.InboundRequest, error) {
	var requests []model.InboundRequest
	err := r.db.Preload("Warehouse").Preload("Items").Preload("Items.Product").
		Where("created_by_id = ?", userID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *inboundRepo) FindByID(id uuid.UUID) (*model.InboundRequest, error) {
	var request model.InboundRequest
	err := r.db.Preload("Warehouse").Preload("Items").Preload("Items.Product").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *inboundRepo) Create(req *model.InboundRequest) error {
	return r.db.Create(req).Error
}

func (r *inboundRepo) ReplaceContent(req *model.InboundRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", req.ID).Delete(&model.InboundItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(req).Error
	})
}

func (r *inboundRepo) UpdateApproval(req *model.InboundRequest) error {
	return r.db.Model(&model.InboundRequest{}).Where("id = ?", req.ID).Updates(map[string]interface{}{
		"status":           req.Status,
		"reject_reason":    req.RejectReason,
		"approval_comment": req.ApprovalComment,
		"approved_by_id":   req.ApprovedByID,
		"approved_at":      req.ApprovedAt,
		"updated_by":       req.UpdatedBy,
	}).Error
}

func (r *inboundRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.InboundRequest{}).Where("id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Delete(&model.InboundRequest{}, "id = ?", id).Error
	})
}

func (r *inboundRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.InboundRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
