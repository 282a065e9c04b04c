package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OutboundRepository interface {
	FindAll() ([]model.OutboundRequest, error)
	FindByCreator(userID uuid.UUID) ([]model.OutboundRequest, error)
	FindByID(id uuid.UUID) (*model.OutboundRequest, error)
	Create(req *model.OutboundRequest) error
	ReplaceContent(req *model.OutboundRequest) error
	UpdateApproval(req *model.OutboundRequest) error
	Delete(id uuid.UUID, deletedBy string) error
	CountByStatus(status model.RequestStatus) (int64, error)
}

type outboundRepo struct {
	db *gorm.DB
}

func NewOutboundRepo(db *gorm.DB) OutboundRepository {
	return &outboundRepo{db}
}

func (r *outboundRepo) FindAll() ([]model.OutboundRequest, error) {
	var requests []model.OutboundRequest
	err := r.db.Preload("Warehouse").Preload("Items").Preload("Items.Product").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *outboundRepo) FindByCreator(userID uuid.UUID) ([]model.OutboundRequest, error) {
	var requests []model.OutboundRequest
	err := r.db.Preload("Warehouse").Preload("Items").Preload("Items.Product").
		Where("created_by_id = ?", userID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *outboundRepo) FindByID(id uuid.UUID) (*model.OutboundRequest, error) {
	var request model.OutboundRequest
	err := r.db.Preload("Warehouse").Preload("Items").Preload("Items.Product").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *outboundRepo) Create(req *model.OutboundRequest) error {
	return r.db.Create(req).Error
}

func (r *outboundRepo) ReplaceContent(req *model.OutboundRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", req.ID).Delete(&model.OutboundItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(req).Error
	})
}

func (r *outboundRepo) UpdateApproval(req *model.OutboundRequest) error {
	return r.db.Model(&model.OutboundRequest{}).Where("id = ?", req.ID).Updates(map[string]interface{}{
		"status":           req.Status,
		"reject_reason":    req.RejectReason,
		"approval_comment": req.ApprovalComment,
		"approved_by_id":   req.ApprovedByID,
		"approved_at":      req.ApprovedAt,
		"updated_by":       req.UpdatedBy,
	}).Error
}

func (r *outboundRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.OutboundRequest{}).Where("id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Delete(&model.OutboundRequest{}, "id = ?", id).Error
	})
}

func (r *outboundRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.OutboundRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
