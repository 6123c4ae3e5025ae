package complaint

import (
	"fmt"
	"time"
)

// Image is an additional photo attached to a complaint. It lives and dies with its complaint.
type Image struct {
	id          uint
	complaintID uint
	path        string
	uploadedAt  time.Time
}

func NewImage(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path is required")
	}
	return &Image{path: path, uploadedAt: time.Now().UTC()}, nil
}

func ReconstructImage(id, complaintID uint, path string, uploadedAt time.Time) *Image {
	return &Image{id: id, complaintID: complaintID, path: path, uploadedAt: uploadedAt}
}

func (i *Image) ID() uint              { return i.id }
func (i *Image) ComplaintID() uint     { return i.complaintID }
func (i *Image) Path() string          { return i.path }
func (i *Image) UploadedAt() time.Time { return i.uploadedAt }

func (i *Image) SetID(id uint) {
	i.id = id
}

func (i *Image) SetComplaintID(id uint) {
	i.complaintID = id
}
