package moderation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/models"
)

// SuspensionService owns the suspension lifecycle: creation (manual and
// automatic by violation count), moderator review, status queries and the
// periodic expiry sweep.
//
// State machine: none -> {warning, temporary, permanent}. A temporary
// suspension can be extended, reduced, made permanent or removed; a
// permanent one can only be removed. Warnings are records only: they are
// created inactive, never restrict the user, and accept no transitions.
type SuspensionService struct {
	suspensions SuspensionStore
	reputation  ReputationService
	cache       StatusCache
	cfg         config.ModerationConfig
}

func NewSuspensionService(suspensions SuspensionStore, reputation ReputationService, cache StatusCache, cfg config.ModerationConfig) *SuspensionService {
	return &SuspensionService{suspensions: suspensions, reputation: reputation, cache: cache, cfg: cfg}
}

// CreateSuspensionInput describes a new suspension. Duration is required for
// temporary suspensions and forbidden otherwise. ModeratorID is nil for
// automatic suspensions.
type CreateSuspensionInput struct {
	UserID      uuid.UUID
	Type        models.SuspensionType
	Reason      string
	Duration    time.Duration
	Appealable  bool
	ModeratorID *uuid.UUID
}

// Create validates the (type, duration) combination, persists the suspension
// and debits the user's reputation for non-warning types.
func (s *SuspensionService) Create(in CreateSuspensionInput) (*models.Suspension, error) {
	susp, err := s.build(in)
	if err != nil {
		return nil, err
	}

	if err := s.suspensions.Save(susp); err != nil {
		return nil, fmt.Errorf("suspension: save: %w", err)
	}

	if susp.Type != models.SuspensionWarning {
		if err := s.reputation.AdjustScore(in.UserID, -s.cfg.SuspensionPenalty, "suspension issued"); err != nil {
			// The suspension itself is already in force; a missed debit is
			// recoverable and must not undo it.
			slog.Error("suspension reputation debit failed", "user_id", in.UserID, "error", err)
		}
	}

	s.invalidate(in.UserID)
	return susp, nil
}

func (s *SuspensionService) build(in CreateSuspensionInput) (*models.Suspension, error) {
	now := time.Now().UTC()
	susp := &models.Suspension{
		UserID:      in.UserID,
		Reason:      in.Reason,
		Type:        in.Type,
		StartDate:   now,
		ModeratorID: in.ModeratorID,
	}

	switch in.Type {
	case models.SuspensionWarning:
		if in.Duration != 0 {
			return nil, ErrDurationForbidden
		}
		// A warning is a record, not a restriction: inactive from birth,
		// end date equal to start so status queries never count it.
		susp.EndDate = now
		susp.IsActive = false
		susp.Appealable = false
	case models.SuspensionTemporary:
		if in.Duration <= 0 {
			return nil, ErrDurationRequired
		}
		d := in.Duration
		susp.Duration = &d
		susp.EndDate = now.Add(d)
		susp.IsActive = true
		susp.Appealable = in.Appealable
	case models.SuspensionPermanent:
		if in.Duration != 0 {
			return nil, ErrDurationForbidden
		}
		susp.EndDate = now.Add(s.cfg.PermanentHorizon)
		susp.IsActive = true
		susp.Appealable = false
	default:
		return nil, ErrInvalidType
	}

	return susp, nil
}

// Review applies a moderator-initiated change to an active suspension.
func (s *SuspensionService) Review(id uuid.UUID, action models.SuspensionReviewAction, newDuration time.Duration) (*models.Suspension, error) {
	if !action.Valid() {
		return nil, ErrInvalidReviewAction
	}

	susp, err := s.suspensions.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("review suspension %s: %w", id, err)
	}
	if !susp.IsActive {
		return nil, ErrSuspensionInactive
	}

	switch action {
	case models.ReviewExtend, models.ReviewReduce:
		if susp.Type == models.SuspensionPermanent {
			return nil, ErrCannotModifyPermanent
		}
		if newDuration <= 0 {
			return nil, ErrDurationRequired
		}
		if action == models.ReviewExtend {
			susp.EndDate = susp.EndDate.Add(newDuration)
		} else {
			susp.EndDate = susp.EndDate.Add(-newDuration)
		}
	case models.ReviewMakePermanent:
		if susp.Type == models.SuspensionPermanent {
			return nil, ErrCannotModifyPermanent
		}
		susp.Type = models.SuspensionPermanent
		susp.Duration = nil
		susp.EndDate = time.Now().UTC().Add(s.cfg.PermanentHorizon)
		susp.Appealable = false
	case models.ReviewRemove:
		susp.IsActive = false
	}

	if err := s.suspensions.Update(susp); err != nil {
		return nil, fmt.Errorf("review suspension %s: %w", id, err)
	}

	s.invalidate(susp.UserID)
	return susp, nil
}

// CreateAutomatic escalates by violation count: the first violation is a
// logged warning only, the second a short temporary suspension, the third a
// longer temporary one, and the fourth or later a permanent ban. It returns
// nil without a record for violation 1.
func (s *SuspensionService) CreateAutomatic(userID uuid.UUID, violationCount int, reason string) (*models.Suspension, error) {
	switch {
	case violationCount <= 1:
		slog.Info("automatic warning issued", "user_id", userID, "violations", violationCount, "reason", reason)
		return nil, nil
	case violationCount == 2:
		return s.Create(CreateSuspensionInput{
			UserID:     userID,
			Type:       models.SuspensionTemporary,
			Reason:     reason,
			Duration:   s.cfg.ShortSuspension,
			Appealable: true,
		})
	case violationCount == 3:
		return s.Create(CreateSuspensionInput{
			UserID:     userID,
			Type:       models.SuspensionTemporary,
			Reason:     reason,
			Duration:   s.cfg.ExtendedSuspension,
			Appealable: true,
		})
	default:
		return s.Create(CreateSuspensionInput{
			UserID: userID,
			Type:   models.SuspensionPermanent,
			Reason: reason,
		})
	}
}

// Status reports whether the user is currently suspended. A suspension
// counts only while active with its end date in the future, so a stale
// IsActive flag on an expired row does not suspend anyone.
func (s *SuspensionService) Status(userID uuid.UUID) (*SuspensionStatus, error) {
	if s.cache != nil {
		if status, ok := s.cache.Get(userID); ok {
			return status, nil
		}
	}

	active, err := s.suspensions.GetActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("suspension status for %s: %w", userID, err)
	}

	now := time.Now().UTC()
	status := &SuspensionStatus{}
	for i := range active {
		if !active[i].InEffect(now) {
			continue
		}
		status.Suspended = true
		if active[i].Appealable {
			status.CanAppeal = true
		}
		if status.ExpiresAt == nil || active[i].EndDate.After(*status.ExpiresAt) {
			end := active[i].EndDate
			status.ExpiresAt = &end
		}
	}

	if s.cache != nil {
		s.cache.Set(userID, status)
	}
	return status, nil
}

// ListByUser returns the user's full suspension history.
func (s *SuspensionService) ListByUser(userID uuid.UUID) ([]models.Suspension, error) {
	return s.suspensions.GetByUser(userID)
}

// SweepExpired deactivates every active suspension whose end date has
// passed and restores reputation for expired temporary ones. It is the
// periodic background task; a suspension deactivated concurrently is simply
// skipped on the next pass, and per-row failures are logged and retried on
// the next cycle rather than aborting the sweep.
func (s *SuspensionService) SweepExpired() (int, error) {
	active, err := s.suspensions.GetActive()
	if err != nil {
		return 0, fmt.Errorf("expiry sweep: load active suspensions: %w", err)
	}

	now := time.Now().UTC()
	expired := 0
	for i := range active {
		susp := active[i]
		if !susp.Expired(now) {
			continue
		}

		susp.IsActive = false
		if err := s.suspensions.Update(&susp); err != nil {
			slog.Error("expiry sweep: deactivate failed", "suspension_id", susp.ID, "error", err)
			continue
		}
		expired++

		// Only temporary suspensions restore reputation. Permanent ones are
		// not expected to expire at all, and warnings never debited anything.
		if susp.Type == models.SuspensionTemporary {
			if err := s.reputation.AdjustScore(susp.UserID, s.cfg.RestorationBonus, "suspension expired"); err != nil {
				slog.Error("expiry sweep: reputation restore failed", "user_id", susp.UserID, "error", err)
			}
		}

		s.invalidate(susp.UserID)
	}

	if expired > 0 {
		slog.Info("expiry sweep completed", "expired", expired, "scanned", len(active))
	}
	return expired, nil
}

func (s *SuspensionService) invalidate(userID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(userID)
	}
}
