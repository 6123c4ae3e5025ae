package usecases

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/civicdesk/civicdesk/internal/application/complaint/dto"
	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	vo "github.com/civicdesk/civicdesk/internal/domain/complaint/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

const DefaultMaxIDAttempts = 5

type ImageUpload struct {
	Filename string
	Content  io.Reader
}

type CreateComplaintCommand struct {
	Title       string
	Category    string
	Description string
	Location    string
	Latitude    *float64
	Longitude   *float64
	// SubmitterID is nil for anonymous submissions.
	SubmitterID *uint
	Image       *ImageUpload
	Images      []ImageUpload
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	idGenerator   complaint.IdentifierGenerator
	txMgr         TransactionRunner
	imageStore    ImageStore
	sanitizer     TextSanitizer
	dispatcher    events.EventPublisher
	maxAttempts   int
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	idGenerator complaint.IdentifierGenerator,
	txMgr TransactionRunner,
	imageStore ImageStore,
	sanitizer TextSanitizer,
	dispatcher events.EventPublisher,
	maxAttempts int,
	logger logger.Interface,
) *CreateComplaintUseCase {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxIDAttempts
	}
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		idGenerator:   idGenerator,
		txMgr:         txMgr,
		imageStore:    imageStore,
		sanitizer:     sanitizer,
		dispatcher:    dispatcher,
		maxAttempts:   maxAttempts,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*dto.ComplaintDTO, error) {
	uc.logger.Infow("executing create complaint use case", "category", cmd.Category, "anonymous", cmd.SubmitterID == nil)

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed",
			errors.FieldError("category", `"`+cmd.Category+`" is not a valid choice`))
	}

	c, err := complaint.NewComplaint(
		uc.sanitizer.PlainText(cmd.Title),
		category,
		uc.sanitizer.PlainText(cmd.Description),
		uc.sanitizer.PlainText(cmd.Location),
		cmd.Latitude,
		cmd.Longitude,
		cmd.SubmitterID,
	)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	stored, err := uc.storeImages(ctx, c, cmd)
	if err != nil {
		uc.discardImages(ctx, stored)
		return nil, err
	}

	if err := uc.insertWithFreshID(ctx, c); err != nil {
		uc.discardImages(ctx, stored)
		return nil, err
	}

	c.MarkCreated()
	publishEvents(uc.dispatcher, uc.logger, c)

	uc.logger.Infow("complaint submitted", "id", c.ID(), "complaint_id", c.ComplaintID())
	return dto.ToComplaintDTO(c, dto.References{}, uc.imageStore.URL), nil
}

// insertWithFreshID stamps an identifier and inserts in one transaction, retrying with
// a recomputed identifier when a concurrent submission took the same one.
func (uc *CreateComplaintUseCase) insertWithFreshID(ctx context.Context, c *complaint.Complaint) error {
	year := biztime.YearOf(biztime.NowUTC())

	var lastErr error
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		lastErr = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			id, err := uc.idGenerator.Next(txCtx, year)
			if err != nil {
				return err
			}
			if err := c.SetComplaintID(id); err != nil {
				return err
			}
			return uc.complaintRepo.Create(txCtx, c)
		})
		if lastErr == nil {
			return nil
		}
		if !stderrors.Is(lastErr, complaint.ErrDuplicateComplaintID) {
			break
		}
		uc.logger.Warnw("complaint id collision, retrying",
			"complaint_id", c.ComplaintID(),
			"attempt", attempt,
			"max_attempts", uc.maxAttempts)
	}

	if stderrors.Is(lastErr, complaint.ErrDuplicateComplaintID) {
		uc.logger.Errorw("could not allocate a unique complaint id",
			"year", year,
			"attempts", uc.maxAttempts,
			"last_candidate", c.ComplaintID())
		return errors.NewInternalError("could not allocate a complaint id, please retry")
	}
	uc.logger.Errorw("failed to save complaint", "error", lastErr)
	return errors.NewInternalError("failed to submit complaint")
}

func (uc *CreateComplaintUseCase) storeImages(ctx context.Context, c *complaint.Complaint, cmd CreateComplaintCommand) ([]string, error) {
	var stored []string

	if cmd.Image != nil {
		ref, err := uc.saveImage(ctx, "image", *cmd.Image)
		if err != nil {
			return stored, err
		}
		stored = append(stored, ref)
		c.SetImage(ref)
	}

	for _, upload := range cmd.Images {
		ref, err := uc.saveImage(ctx, "images", upload)
		if err != nil {
			return stored, err
		}
		stored = append(stored, ref)

		img, err := complaint.NewImage(ref)
		if err != nil {
			return stored, errors.NewInternalError("failed to attach image")
		}
		if err := c.AddImage(img); err != nil {
			return stored, errors.NewInternalError("failed to attach image")
		}
	}
	return stored, nil
}

func (uc *CreateComplaintUseCase) saveImage(ctx context.Context, field string, upload ImageUpload) (string, error) {
	ref, err := uc.imageStore.Save(ctx, upload.Filename, upload.Content)
	if err == nil {
		return ref, nil
	}
	if stderrors.Is(err, complaint.ErrInvalidImage) {
		return "", errors.NewValidationError("Validation failed", errors.FieldError(field, err.Error()))
	}
	uc.logger.Errorw("failed to store image", "filename", upload.Filename, "error", err)
	return "", errors.NewInternalError("failed to store image")
}

func (uc *CreateComplaintUseCase) discardImages(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := uc.imageStore.Delete(ctx, ref); err != nil {
			uc.logger.Warnw("failed to remove orphaned image", "ref", ref, "error", err)
		}
	}
}
