package mappers

import (
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint aggregates and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ImagesToModels(c *complaint.Complaint) []*models.ComplaintImageModel
	// ToDomain converts a complaint row; images are taken from model.Images.
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)
	ToDomainList(rows []*models.ComplaintModel) ([]*complaint.Complaint, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:                   c.ID(),
		ComplaintID:          c.ComplaintID(),
		UserID:               c.UserID(),
		Title:                c.Title(),
		Category:             c.Category().String(),
		Description:          c.Description(),
		Location:             c.Location(),
		Latitude:             c.Latitude(),
		Longitude:            c.Longitude(),
		Status:               c.Status().String(),
		Image:                c.Image(),
		AssignedDepartmentID: c.AssignedDepartmentID(),
		AssignedToID:         c.AssignedToID(),
		CreatedAt:            c.CreatedAt().UnixMilli(),
		UpdatedAt:            c.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) ImagesToModels(c *complaint.Complaint) []*models.ComplaintImageModel {
	images := c.Images()
	out := make([]*models.ComplaintImageModel, 0, len(images))
	for _, img := range images {
		out = append(out, &models.ComplaintImageModel{
			ID:          img.ID(),
			ComplaintID: c.ID(),
			Image:       img.Path(),
			UploadedAt:  img.UploadedAt().UnixMilli(),
		})
	}
	return out
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	if model == nil {
		return nil, nil
	}

	images := make([]*complaint.Image, 0, len(model.Images))
	for i := range model.Images {
		img := &model.Images[i]
		images = append(images, complaint.ReconstructImage(img.ID, img.ComplaintID, img.Image, millisToTime(img.UploadedAt)))
	}

	c, err := complaint.ReconstructComplaint(complaint.ComplaintState{
		ID:                   model.ID,
		ComplaintID:          model.ComplaintID,
		UserID:               model.UserID,
		Title:                model.Title,
		Category:             vo.Category(model.Category),
		Description:          model.Description,
		Location:             model.Location,
		Latitude:             model.Latitude,
		Longitude:            model.Longitude,
		Status:               vo.Status(model.Status),
		Image:                model.Image,
		Images:               images,
		AssignedDepartmentID: model.AssignedDepartmentID,
		AssignedToID:         model.AssignedToID,
		CreatedAt:            millisToTime(model.CreatedAt),
		UpdatedAt:            millisToTime(model.UpdatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct complaint (id=%d): %w", model.ID, err)
	}
	return c, nil
}

func (m *ComplaintMapperImpl) ToDomainList(rows []*models.ComplaintModel) ([]*complaint.Complaint, error) {
	out := make([]*complaint.Complaint, 0, len(rows))
	for _, row := range rows {
		c, err := m.ToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
