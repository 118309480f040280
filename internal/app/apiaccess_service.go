// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/api-access-service/internal/domain"
	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
	"github.com/jsamuelsen11/api-access-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/api-access-service/internal/ports"
)

// Operation names used for spans, metric labels, and log records.
const (
	OpAddAPIAccess           = "AddAPIAccess"
	OpEditAPIAccess          = "EditAPIAccess"
	OpGetAPIAccessForEditing = "GetAPIAccessForEditing"
)

// Compile-time check that APIAccessService implements ports.APIAccessService.
var _ ports.APIAccessService = (*APIAccessService)(nil)

// APIAccessService implements ports.APIAccessService. It runs the validator,
// mutates the store, and wraps each operation in a span, a metric sample,
// and structured logs. Uniqueness is left to the store.
type APIAccessService struct {
	store     ports.APIAccessStore
	validator apiaccess.Validator
	recorder  ports.CommandRecorder
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewAPIAccessService creates an APIAccessService. recorder and logger may be
// nil.
func NewAPIAccessService(
	store ports.APIAccessStore,
	limits apiaccess.Limits,
	recorder ports.CommandRecorder,
	logger *slog.Logger,
) *APIAccessService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &APIAccessService{
		store:     store,
		validator: apiaccess.NewValidator(limits),
		recorder:  recorder,
		tracer:    otel.Tracer(telemetry.ScopeName),
		logger:    logger,
	}
}

// AddAPIAccess validates the command and persists a new API access.
func (s *APIAccessService) AddAPIAccess(ctx context.Context, cmd apiaccess.AddAPIAccessCommand) (apiaccess.ID, error) {
	var id apiaccess.ID

	err := s.observe(ctx, OpAddAPIAccess, []slog.Attr{slog.String("client_name", cmd.ClientName)},
		func(ctx context.Context) error {
			if err := s.validator.ValidateNew(cmd.Values()).Err(); err != nil {
				return err
			}

			newID, err := s.store.Add(ctx, cmd.Entity())
			if err != nil {
				return wrapStoreError("adding", err)
			}
			id = newID
			trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("api_access.id", id.Value()))
			return nil
		})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EditAPIAccess applies the present fields of the patch to an existing API
// access. An empty patch succeeds without writing.
func (s *APIAccessService) EditAPIAccess(ctx context.Context, cmd apiaccess.EditAPIAccessCommand) error {
	return s.observe(ctx, OpEditAPIAccess, []slog.Attr{slog.Int64("api_access_id", cmd.ID)},
		func(ctx context.Context) error {
			id, err := apiaccess.NewID(cmd.ID)
			if err != nil {
				return err
			}
			trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("api_access.id", id.Value()))

			if _, err := s.store.Get(ctx, id); err != nil {
				return wrapStoreError("loading", err)
			}

			if err := s.validator.ValidatePatch(cmd.Patch).Err(); err != nil {
				return err
			}

			if cmd.Patch.IsEmpty() {
				return nil
			}

			if err := s.store.Update(ctx, id, cmd.Patch); err != nil {
				return wrapStoreError("updating", err)
			}
			return nil
		})
}

// GetAPIAccessForEditing returns a fresh snapshot of one API access.
func (s *APIAccessService) GetAPIAccessForEditing(
	ctx context.Context,
	q apiaccess.GetAPIAccessForEditing,
) (apiaccess.EditableAPIAccess, error) {
	var out apiaccess.EditableAPIAccess

	err := s.observe(ctx, OpGetAPIAccessForEditing, []slog.Attr{slog.Int64("api_access_id", q.ID)},
		func(ctx context.Context) error {
			id, err := apiaccess.NewID(q.ID)
			if err != nil {
				return err
			}
			trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("api_access.id", id.Value()))

			a, err := s.store.Get(ctx, id)
			if err != nil {
				return wrapStoreError("loading", err)
			}
			out = apiaccess.NewEditableAPIAccess(a)
			return nil
		})
	if err != nil {
		return apiaccess.EditableAPIAccess{}, err
	}
	return out, nil
}

// observe runs fn inside a span named op, records its duration and result,
// and logs the outcome. Expected failures (constraints, missing entities, bad
// ids) log at warn; anything else logs at error.
func (s *APIAccessService) observe(
	ctx context.Context,
	op string,
	attrs []slog.Attr,
	fn func(ctx context.Context) error,
) error {
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "handling "+op, attrs...)

	start := time.Now()
	err := fn(ctx)
	result := resultOf(err)

	if s.recorder != nil {
		s.recorder.RecordCommand(ctx, op, result, time.Since(start))
	}

	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, result)

	logAttrs := append([]slog.Attr{slog.String("operation", op)}, attrs...)
	var cerr *apiaccess.ConstraintError
	if errors.As(err, &cerr) {
		logAttrs = append(logAttrs,
			slog.String("field", cerr.Field.String()),
			slog.String("code", cerr.Code.String()),
		)
	}
	logAttrs = append(logAttrs, slog.Any("error", err))

	level := slog.LevelError
	if result != telemetry.ResultError {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, op+" failed", logAttrs...)

	return err
}

// resultOf maps an operation error to its metric result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return telemetry.ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return telemetry.ResultNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return telemetry.ResultConstraint
	default:
		return telemetry.ResultError
	}
}

// wrapStoreError makes sure a store failure matches apiaccess.ErrAPIAccess.
// Typed domain errors pass through unchanged.
func wrapStoreError(action string, err error) error {
	if errors.Is(err, apiaccess.ErrAPIAccess) {
		return err
	}
	return fmt.Errorf("%w: %s api access: %w", apiaccess.ErrAPIAccess, action, err)
}
