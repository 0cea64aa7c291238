package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/logger"
	"github.com/hoangtien79/FunBuyPlace/internal/platform/metrics"
)

// DefaultResolution is substituted when a moderator resolves a report
// without entering a summary.
const DefaultResolution = "Report resolved by admin"

// reportTransitions is the report status machine. Resolved and
// dismissed are terminal. Resolve is only reachable from investigating;
// a report cannot skip the investigation step.
var reportTransitions = map[entity.ReportStatus]map[Action]entity.ReportStatus{
	entity.ReportStatusPending: {
		ActionInvestigate: entity.ReportStatusInvestigating,
		ActionDismiss:     entity.ReportStatusDismissed,
	},
	entity.ReportStatusInvestigating: {
		ActionResolve: entity.ReportStatusResolved,
		ActionDismiss: entity.ReportStatusDismissed,
	},
}

// ReportModeration walks moderation cases through their lifecycle.
type ReportModeration struct {
	repo    ReportRepository
	logger  *logger.Logger
	metrics *metrics.Manager
}

func NewReportModeration(repo ReportRepository, log *logger.Logger, m *metrics.Manager) *ReportModeration {
	return &ReportModeration{repo: repo, logger: log, metrics: m}
}

// Investigate moves a pending report into investigation.
func (uc *ReportModeration) Investigate(ctx context.Context, id string) (entity.Report, error) {
	return uc.apply(ctx, id, ActionInvestigate)
}

// Dismiss closes a pending or investigating report without a
// resolution.
func (uc *ReportModeration) Dismiss(ctx context.Context, id string) (entity.Report, error) {
	return uc.apply(ctx, id, ActionDismiss)
}

// Resolve closes an investigating report with a resolution summary.
// A blank summary is replaced with DefaultResolution, so a resolved
// report always carries a non-empty resolution.
func (uc *ReportModeration) Resolve(ctx context.Context, id, resolution string) (entity.Report, error) {
	report, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.logger.Warn("report action target not found",
			zap.String("report_id", id), zap.String("action", string(ActionResolve)))
		return entity.Report{}, fmt.Errorf("ReportModeration.Resolve: %w", err)
	}

	next, err := nextStatus(KindReport, reportTransitions, report.Status, ActionResolve)
	if err != nil {
		uc.metrics.RecordIllegal(string(KindReport), string(ActionResolve))
		uc.logger.Warn("illegal report transition rejected",
			zap.String("report_id", id),
			zap.String("status", string(report.Status)),
			zap.String("action", string(ActionResolve)))
		return entity.Report{}, err
	}

	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		resolution = DefaultResolution
	}

	updated, err := uc.repo.Update(ctx, id, func(r *entity.Report) {
		r.Status = next
		r.Resolution = resolution
	})
	if err != nil {
		return entity.Report{}, fmt.Errorf("ReportModeration.Resolve: %w", err)
	}

	uc.metrics.RecordAction(string(KindReport), string(ActionResolve))
	uc.logger.Info("report resolved",
		zap.String("report_id", id), zap.String("resolution", resolution))
	return updated, nil
}

// CanApply reports whether the action is currently legal for the
// report.
func (uc *ReportModeration) CanApply(ctx context.Context, id string, action Action) (bool, error) {
	report, err := uc.repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("ReportModeration.CanApply: %w", err)
	}
	return transitionLegal(reportTransitions, report.Status, action), nil
}

func (uc *ReportModeration) apply(ctx context.Context, id string, action Action) (entity.Report, error) {
	report, err := uc.repo.Get(ctx, id)
	if err != nil {
		uc.logger.Warn("report action target not found",
			zap.String("report_id", id), zap.String("action", string(action)))
		return entity.Report{}, fmt.Errorf("ReportModeration.apply: %w", err)
	}

	next, err := nextStatus(KindReport, reportTransitions, report.Status, action)
	if err != nil {
		uc.metrics.RecordIllegal(string(KindReport), string(action))
		uc.logger.Warn("illegal report transition rejected",
			zap.String("report_id", id),
			zap.String("status", string(report.Status)),
			zap.String("action", string(action)))
		return entity.Report{}, err
	}

	updated, err := uc.repo.Update(ctx, id, func(r *entity.Report) {
		r.Status = next
	})
	if err != nil {
		return entity.Report{}, fmt.Errorf("ReportModeration.apply: %w", err)
	}

	uc.metrics.RecordAction(string(KindReport), string(action))
	uc.logger.Info("report status updated",
		zap.String("report_id", id),
		zap.String("action", string(action)),
		zap.String("from", string(report.Status)),
		zap.String("to", string(next)))
	return updated, nil
}
