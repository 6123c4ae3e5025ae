package usecases

import (
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// render falls back to an empty HTML description when markdown rendering fails.
func render(renderer DescriptionRenderer, log logger.Interface, d *department.Department) *dto.DepartmentDTO {
	html, err := renderer.ToHTMLSanitized(d.Description())
	if err != nil {
		log.Warnw("failed to render department description", "department_id", d.ID(), "error", err)
		html = ""
	}
	return dto.ToDepartmentDTO(d, html)
}

func departmentLoadError(log logger.Interface, err error, id uint) error {
	if stderrors.Is(err, department.ErrDepartmentNotFound) {
		return errors.NewNotFoundError("department not found")
	}
	log.Errorw("failed to load department", "department_id", id, "error", err)
	return errors.NewInternalError("failed to load department")
}
