package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/securenotes/internal/errors"
	"github.com/allisson/securenotes/internal/metrics"
	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

type noteUseCaseWithMetrics struct {
	next    NoteUseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics records the outcome and latency of every call to useCase.
func NewNoteUseCaseWithMetrics(useCase NoteUseCase, m metrics.BusinessMetrics) NoteUseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *noteUseCaseWithMetrics) Create(
	ctx context.Context,
	input *notesDomain.NoteInput,
) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Create(ctx, input)
	n.record(ctx, "create", start, err)
	return note, err
}

func (n *noteUseCaseWithMetrics) Get(ctx context.Context, id int64) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Get(ctx, id)
	n.record(ctx, "get", start, err)
	return note, err
}

func (n *noteUseCaseWithMetrics) List(ctx context.Context) ([]*notesDomain.Note, error) {
	start := time.Now()
	notes, err := n.next.List(ctx)
	n.record(ctx, "list", start, err)
	return notes, err
}

func (n *noteUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input *notesDomain.NoteInput,
) (*notesDomain.Note, error) {
	start := time.Now()
	note, err := n.next.Update(ctx, id, input)
	n.record(ctx, "update", start, err)
	return note, err
}

func (n *noteUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := n.next.Delete(ctx, id)
	n.record(ctx, "delete", start, err)
	return err
}

func (n *noteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := statusOf(err)
	if status == metrics.StatusIntegrity {
		n.metrics.RecordIntegrityFailure(ctx, operation)
	}
	n.metrics.ObserveOperation(ctx, operation, status, time.Since(start))
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case apperrors.Is(err, apperrors.ErrNotFound):
		return metrics.StatusNotFound
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return metrics.StatusInvalid
	case apperrors.Is(err, apperrors.ErrIntegrity):
		return metrics.StatusIntegrity
	default:
		return metrics.StatusError
	}
}
