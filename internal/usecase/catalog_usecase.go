package usecase

import (
	"errors"

	"agenda_etech/internal/domain/entities"
)

var (
	ErrAppChoiceLimitReached = errors.New("app choice limit reached for category")
	ErrAppNotInOption        = errors.New("app does not belong to the selected plan option")
)

// ICatalogUseCase exposes the plan catalog and the app-selection rules tied
// to it.
//
// Lookups are total: an unknown code falls back to the catalog's first entry
// (the catalog is a closed, trusted set, so a defensive default beats an
// error the caller cannot act on). The selection operations are pure; the
// caller owns the selection slice and must start from an empty one whenever
// the active plan or option changes.

type ICatalogUseCase interface {
	ListPlans() []entities.Plan
	LookupPlan(codigo string) entities.Plan
	LookupOption(plan entities.Plan, optionID string) entities.PlanOption
	ToggleApp(option entities.PlanOption, selected []string, app string, category entities.AppCategory) ([]string, error)
	ValidateSelection(option entities.PlanOption, selected []string) error
	MaterializeSelection(option entities.PlanOption, selected []string) []entities.ChosenApps
}

type CatalogUseCase struct {
	planos []entities.Plan
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{planos: entities.Planos}
}

func (u *CatalogUseCase) ListPlans() []entities.Plan {
	return u.planos
}

func (u *CatalogUseCase) LookupPlan(codigo string) entities.Plan {
	for _, p := range u.planos {
		if p.Codigo == codigo {
			return p
		}
	}
	return u.planos[0]
}

func (u *CatalogUseCase) LookupOption(plan entities.Plan, optionID string) entities.PlanOption {
	for _, opt := range plan.Options {
		if opt.ID == optionID {
			return opt
		}
	}
	return plan.Options[0]
}

// ToggleApp flips one app in the selection. Removing always succeeds; adding
// fails with ErrAppChoiceLimitReached once the category's cap is filled, and
// the input selection is returned unchanged.
func (u *CatalogUseCase) ToggleApp(option entities.PlanOption, selected []string, app string, category entities.AppCategory) ([]string, error) {
	group, ok := findChoiceGroup(option, category)
	if !ok || !containsString(group.Options, app) {
		return selected, ErrAppNotInOption
	}

	if containsString(selected, app) {
		out := make([]string, 0, len(selected)-1)
		for _, s := range selected {
			if s != app {
				out = append(out, s)
			}
		}
		return out, nil
	}

	if countInGroup(group, selected) >= group.Count {
		return selected, ErrAppChoiceLimitReached
	}

	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, app), nil
}

// ValidateSelection checks a full selection against the active option before
// it is persisted: every app must belong to one of the option's groups (a
// stale selection carried over from another plan/option is rejected here)
// and no group may exceed its cap.
func (u *CatalogUseCase) ValidateSelection(option entities.PlanOption, selected []string) error {
	for _, app := range selected {
		known := false
		for _, g := range option.Choices {
			if containsString(g.Options, app) {
				known = true
				break
			}
		}
		if !known {
			return ErrAppNotInOption
		}
	}

	for _, g := range option.Choices {
		if countInGroup(g, selected) > g.Count {
			return ErrAppChoiceLimitReached
		}
	}
	return nil
}

// MaterializeSelection partitions a flat selection into the option's groups,
// in declared order. Groups with no match still appear with an empty list so
// the persisted record always carries the full option shape.
func (u *CatalogUseCase) MaterializeSelection(option entities.PlanOption, selected []string) []entities.ChosenApps {
	out := make([]entities.ChosenApps, 0, len(option.Choices))
	for _, g := range option.Choices {
		apps := make([]string, 0)
		for _, app := range selected {
			if containsString(g.Options, app) {
				apps = append(apps, app)
			}
		}
		out = append(out, entities.ChosenApps{Category: g.Category, Apps: apps})
	}
	return out
}

func findChoiceGroup(option entities.PlanOption, category entities.AppCategory) (entities.AppChoiceGroup, bool) {
	for _, g := range option.Choices {
		if g.Category == category {
			return g, true
		}
	}
	return entities.AppChoiceGroup{}, false
}

func countInGroup(g entities.AppChoiceGroup, selected []string) int {
	n := 0
	for _, s := range selected {
		if containsString(g.Options, s) {
			n++
		}
	}
	return n
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
