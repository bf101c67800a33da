package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/review"
	"courier/internal/pkg/errs"
)

// SubmitReviewCommandHandler handles review submission for delivered parcels.
// Stores the review and folds the rating into the agent's running average in
// one transaction, guarded so concurrent reviews for the same agent cannot
// both build on the same review count.
//
// Example:
//
//	handler := NewSubmitReviewCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrDuplicateReview):
//	    log.Println("Reviewer already rated this delivery")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Concurrent review, safe to retry")
//	case err != nil:
//	    log.Printf("Review failed: %v", err)
//	}
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
// Requires a ReviewUoWFactory for coordinating updates across aggregates.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
// Only delivered parcels accept reviews; the agent comes from the parcel's
// assignment. One review per reviewer per parcel is enforced both here and
// by a unique constraint in storage. The agent row is updated only if its
// review count has not moved since it was read, otherwise errs.ErrConflict
// tells the caller to retry.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelAggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if parcelAggregate.Status() != parcel.Delivered {
		return errs.NewInvalidStateError(
			fmt.Sprintf("parcel %s", cmd.ParcelID()),
			parcelAggregate.Status().String(),
		)
	}

	assignmentID := parcelAggregate.AssignmentID()
	if assignmentID == nil {
		return errs.NewMissingAssignmentError(cmd.ParcelID().String())
	}

	record, err := uow.AssignmentRepository().Get(ctx, *assignmentID)
	if err != nil {
		return err
	}

	_, err = uow.ReviewRepository().GetByParcelAndReviewer(ctx, cmd.ParcelID(), cmd.ReviewerID())
	if err == nil {
		return errs.NewDuplicateReviewError(cmd.ParcelID().String(), cmd.ReviewerID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	agentAggregate, err := uow.AgentRepository().Get(ctx, record.AgentID())
	if err != nil {
		return err
	}
	expectedReviews := agentAggregate.TotalReviews()

	reviewAggregate, err := review.NewReview(
		cmd.ReviewID(),
		cmd.ParcelID(),
		record.AgentID(),
		cmd.ReviewerID(),
		cmd.Rating(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = agentAggregate.RecordRating(cmd.Rating()); err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, reviewAggregate); err != nil {
		return err
	}

	if err = uow.AgentRepository().UpdateWhereTotalReviews(ctx, agentAggregate, expectedReviews); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
