package entities

// AppCategory classifies the add-on application tiers offered with a plan.

type AppCategory string

const (
	AppCategoryStandard AppCategory = "STANDARD"
	AppCategoryAdvanced AppCategory = "ADVANCED"
	AppCategoryTop      AppCategory = "TOP"
	AppCategoryPremium  AppCategory = "PREMIUM"
)

// AppChoiceGroup is one category slot inside a plan option: the customer
// picks up to Count apps out of Options.
//
// Invariant (guaranteed by the compiled-in catalog):
//   - Count >= 1 and Count <= len(Options)

type AppChoiceGroup struct {
	Category AppCategory `json:"category"`
	Count    int         `json:"count"`
	Options  []string    `json:"options"`
}

// PlanOption is a mutually exclusive format of a plan ("Opção A", "Formato
// Único"). Its ID is unique within the plan only.

type PlanOption struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Choices []AppChoiceGroup `json:"choices"`
}

// Plan is one service tier of the catalog.
//
// Monetary representation:
//   - Valor is in integer centavos to keep catalog prices exact.
//
// Invariant: every plan has at least one option.

type Plan struct {
	Codigo  string       `json:"codigo"`
	Nome    string       `json:"nome"`
	Mbps    int          `json:"mbps"`
	Valor   int64        `json:"valor"`
	Options []PlanOption `json:"options"`
}

// ChosenApps is the persisted, per-category partition of an app selection.

type ChosenApps struct {
	Category AppCategory `json:"category"`
	Apps     []string    `json:"apps"`
}
