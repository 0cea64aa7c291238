package usecase

import (
	"context"
	"fmt"

	"github.com/hoangtien79/FunBuyPlace/internal/entity"
)

// Kind names an entity kind in action dispatch.
type Kind string

const (
	KindUser    Kind = "user"
	KindListing Kind = "listing"
	KindReport  Kind = "report"
)

// Action names a moderator- or viewer-initiated operation. The same
// action name may appear in several state machines (suspend applies to
// both users and listings).
type Action string

const (
	ActionSuspend     Action = "suspend"
	ActionActivate    Action = "activate"
	ActionBan         Action = "ban"
	ActionFlag        Action = "flag"
	ActionApprove     Action = "approve"
	ActionFeature     Action = "feature"
	ActionLike        Action = "like"
	ActionSave        Action = "save"
	ActionInvestigate Action = "investigate"
	ActionResolve     Action = "resolve"
	ActionDismiss     Action = "dismiss"
)

// nextStatus looks an action up in a transition table. A miss, whether
// from an unknown action, an unlisted (terminal or unrecognized)
// current status, or both, is an illegal transition.
func nextStatus[S ~string](kind Kind, table map[S]map[Action]S, current S, action Action) (S, error) {
	if moves, ok := table[current]; ok {
		if next, ok := moves[action]; ok {
			return next, nil
		}
	}
	var zero S
	return zero, &entity.IllegalTransitionError{
		Kind:    string(kind),
		Current: string(current),
		Action:  string(action),
	}
}

func transitionLegal[S ~string](table map[S]map[Action]S, current S, action Action) bool {
	moves, ok := table[current]
	if !ok {
		return false
	}
	_, ok = moves[action]
	return ok
}

// Engine dispatches (kind, id, action, payload) tuples coming from the
// UI layer onto the per-kind usecases. The payload currently only
// carries the resolution text of a report resolve.
type Engine struct {
	Users    *UserModeration
	Listings *ListingModeration
	Reports  *ReportModeration
}

func NewEngine(users *UserModeration, listings *ListingModeration, reports *ReportModeration) *Engine {
	return &Engine{Users: users, Listings: listings, Reports: reports}
}

// Apply runs the named action. It is a complete no-op on any failure:
// unknown kinds and actions surface as illegal transitions, absent ids
// as entity.ErrNotFound.
func (e *Engine) Apply(ctx context.Context, kind Kind, id string, action Action, payload string) error {
	switch kind {
	case KindUser:
		_, err := e.Users.apply(ctx, id, action)
		return err
	case KindListing:
		switch action {
		case ActionFeature:
			_, err := e.Listings.ToggleFeatured(ctx, id)
			return err
		case ActionLike:
			_, err := e.Listings.ToggleLike(ctx, id)
			return err
		case ActionSave:
			_, err := e.Listings.ToggleSave(ctx, id)
			return err
		default:
			_, err := e.Listings.apply(ctx, id, action)
			return err
		}
	case KindReport:
		if action == ActionResolve {
			_, err := e.Reports.Resolve(ctx, id, payload)
			return err
		}
		_, err := e.Reports.apply(ctx, id, action)
		return err
	default:
		return fmt.Errorf("%w: unknown entity kind %q", entity.ErrIllegalTransition, kind)
	}
}

// CanApply reports whether the action would currently be legal for the
// record, without mutating anything. The UI uses it to decide whether a
// destructive-action confirmation dialog should be offered at all.
func (e *Engine) CanApply(ctx context.Context, kind Kind, id string, action Action) (bool, error) {
	switch kind {
	case KindUser:
		return e.Users.CanApply(ctx, id, action)
	case KindListing:
		return e.Listings.CanApply(ctx, id, action)
	case KindReport:
		return e.Reports.CanApply(ctx, id, action)
	default:
		return false, fmt.Errorf("%w: unknown entity kind %q", entity.ErrIllegalTransition, kind)
	}
}
