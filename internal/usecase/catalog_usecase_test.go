package usecase

import (
	"errors"
	"testing"

	"agenda_etech/internal/domain/entities"
)

func TestCatalogUseCase_LookupPlan(t *testing.T) {
	uc := NewCatalogUseCase()

	t.Run("total over the whole catalog", func(t *testing.T) {
		for _, p := range uc.ListPlans() {
			got := uc.LookupPlan(p.Codigo)
			if got.Codigo != p.Codigo {
				t.Fatalf("expected %s, got %s", p.Codigo, got.Codigo)
			}
			if len(got.Options) == 0 {
				t.Fatalf("plan %s has no options", got.Codigo)
			}
		}
	})

	t.Run("unknown code falls back to first entry", func(t *testing.T) {
		got := uc.LookupPlan("NAO_EXISTE")
		if got.Codigo != uc.ListPlans()[0].Codigo {
			t.Fatalf("expected fallback to first plan, got %s", got.Codigo)
		}
	})
}

func TestCatalogUseCase_LookupOption(t *testing.T) {
	uc := NewCatalogUseCase()
	plan := uc.LookupPlan("PLUS_300")

	if got := uc.LookupOption(plan, "B"); got.ID != "B" {
		t.Fatalf("expected option B, got %s", got.ID)
	}
	if got := uc.LookupOption(plan, "Z"); got.ID != plan.Options[0].ID {
		t.Fatalf("expected fallback to first option, got %s", got.ID)
	}
}

func TestCatalogUseCase_ToggleApp(t *testing.T) {
	uc := NewCatalogUseCase()
	plan := uc.LookupPlan("ULTRA_500")
	opt := uc.LookupOption(plan, "C") // Advanced, 2 apps

	t.Run("add then remove", func(t *testing.T) {
		sel, err := uc.ToggleApp(opt, nil, "Deezer", entities.AppCategoryAdvanced)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sel) != 1 || sel[0] != "Deezer" {
			t.Fatalf("unexpected selection: %v", sel)
		}

		sel, err = uc.ToggleApp(opt, sel, "Deezer", entities.AppCategoryAdvanced)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sel) != 0 {
			t.Fatalf("expected empty selection, got %v", sel)
		}
	})

	t.Run("cap rejection leaves selection unchanged", func(t *testing.T) {
		sel := []string{"Deezer", "DocWay"}
		got, err := uc.ToggleApp(opt, sel, "HotGo", entities.AppCategoryAdvanced)
		if !errors.Is(err, ErrAppChoiceLimitReached) {
			t.Fatalf("expected ErrAppChoiceLimitReached, got %v", err)
		}
		if len(got) != 2 || got[0] != "Deezer" || got[1] != "DocWay" {
			t.Fatalf("selection changed on rejection: %v", got)
		}

		// Removal still works at the cap.
		got, err = uc.ToggleApp(opt, sel, "DocWay", entities.AppCategoryAdvanced)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != "Deezer" {
			t.Fatalf("unexpected selection after removal: %v", got)
		}
	})

	t.Run("app outside the option", func(t *testing.T) {
		_, err := uc.ToggleApp(opt, nil, "HBO Max (sem anúncios)", entities.AppCategoryPremium)
		if !errors.Is(err, ErrAppNotInOption) {
			t.Fatalf("expected ErrAppNotInOption, got %v", err)
		}
	})

	t.Run("cap never exceeded under any toggle sequence", func(t *testing.T) {
		group := opt.Choices[0]
		sel := []string{}
		apps := group.Options
		for i := 0; i < 3*len(apps); i++ {
			next, err := uc.ToggleApp(opt, sel, apps[i%len(apps)], group.Category)
			if err == nil {
				sel = next
			}
			if n := countInGroup(group, sel); n > group.Count {
				t.Fatalf("cap exceeded: %d > %d (selection %v)", n, group.Count, sel)
			}
		}
	})
}

func TestCatalogUseCase_ValidateSelection(t *testing.T) {
	uc := NewCatalogUseCase()
	plan := uc.LookupPlan("PLUS_300")
	optA := uc.LookupOption(plan, "A")
	optB := uc.LookupOption(plan, "B")

	t.Run("valid selection", func(t *testing.T) {
		if err := uc.ValidateSelection(optB, []string{"Ubook+", "Deezer"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stale selection from another option is rejected", func(t *testing.T) {
		// "Leitura360" belongs to option A's Top group, not to option B.
		err := uc.ValidateSelection(optB, []string{"Leitura360"})
		if !errors.Is(err, ErrAppNotInOption) {
			t.Fatalf("expected ErrAppNotInOption, got %v", err)
		}
		if err := uc.ValidateSelection(optA, []string{"Leitura360"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("over-cap selection is rejected", func(t *testing.T) {
		err := uc.ValidateSelection(optB, []string{"Deezer", "DocWay"})
		if !errors.Is(err, ErrAppChoiceLimitReached) {
			t.Fatalf("expected ErrAppChoiceLimitReached, got %v", err)
		}
	})
}

func TestCatalogUseCase_MaterializeSelection(t *testing.T) {
	uc := NewCatalogUseCase()
	plan := uc.LookupPlan("ULTRA_500")
	opt := uc.LookupOption(plan, "B") // Advanced (1) + Standard (2)

	got := uc.MaterializeSelection(opt, []string{"Looke", "Deezer"})
	if len(got) != len(opt.Choices) {
		t.Fatalf("expected %d groups, got %d", len(opt.Choices), len(got))
	}
	if got[0].Category != entities.AppCategoryAdvanced || got[1].Category != entities.AppCategoryStandard {
		t.Fatalf("groups out of declared order: %+v", got)
	}
	if len(got[0].Apps) != 1 || got[0].Apps[0] != "Deezer" {
		t.Fatalf("unexpected advanced apps: %v", got[0].Apps)
	}
	if len(got[1].Apps) != 1 || got[1].Apps[0] != "Looke" {
		t.Fatalf("unexpected standard apps: %v", got[1].Apps)
	}

	t.Run("empty groups still appear", func(t *testing.T) {
		got := uc.MaterializeSelection(opt, nil)
		if len(got) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(got))
		}
		for _, g := range got {
			if len(g.Apps) != 0 {
				t.Fatalf("expected empty apps, got %v", g.Apps)
			}
		}
	})
}
