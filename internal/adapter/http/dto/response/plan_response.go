package response

import (
	"agenda_etech/internal/domain/entities"
)

type AppChoiceGroupResponse struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Options  []string `json:"options"`
}

type PlanOptionResponse struct {
	ID      string                   `json:"id"`
	Name    string                   `json:"name"`
	Choices []AppChoiceGroupResponse `json:"choices"`
}

type PlanResponse struct {
	Codigo  string               `json:"codigo"`
	Nome    string               `json:"nome"`
	Mbps    int                  `json:"mbps"`
	Valor   int64                `json:"valor"`
	Options []PlanOptionResponse `json:"options"`
}

func FromPlan(p entities.Plan) PlanResponse {
	options := make([]PlanOptionResponse, 0, len(p.Options))
	for _, opt := range p.Options {
		choices := make([]AppChoiceGroupResponse, 0, len(opt.Choices))
		for _, g := range opt.Choices {
			choices = append(choices, AppChoiceGroupResponse{
				Category: string(g.Category),
				Count:    g.Count,
				Options:  g.Options,
			})
		}
		options = append(options, PlanOptionResponse{ID: opt.ID, Name: opt.Name, Choices: choices})
	}
	return PlanResponse{
		Codigo:  p.Codigo,
		Nome:    p.Nome,
		Mbps:    p.Mbps,
		Valor:   p.Valor,
		Options: options,
	}
}

func FromPlans(list []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPlan(p))
	}
	return out
}

// ToggleAppResponse carries the selection after a toggle.
type ToggleAppResponse struct {
	Selected []string `json:"selected"`
}
