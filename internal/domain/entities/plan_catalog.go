package entities

// App pools shared by every plan that offers the category.

var (
	standardApps = []string{
		"Ubook+", "Estuda+", "Pequenos Leitores", "Looke", "Sky+ Light SVA",
		"PlayKids+", "Kaspersky Standard (1 licença)", "Hub Vantagens",
		"Revistaria", "Fluid", "Social Comics", "QNutri", "Playlist", "Kiddle Pass",
	}
	advancedApps = []string{
		"Deezer", "DocWay", "Sky+ Light com Globo SVA",
		"Kaspersky Standard (3 licenças)", "O Jornalista", "CurtaOn",
		"HotGo", "Kiddle Pass",
	}
	topApps = []string{
		"HBO Max (com anúncios)", "Sky+ Light com Globo e Amazon SVA",
		"Leitura360", "Cindie",
	}
	premiumApps = []string{
		"HBO Max (sem anúncios)", "Kaspersky Plus (5 licenças)",
		"ZenWellness", "Queima Diária", "Smart Content",
	}
)

// Planos is the commercial catalog. It is a closed, trusted set compiled into
// the binary; catalog edits ship as releases and never rewrite persisted
// installation records (records carry their own plan snapshot).

var Planos = []Plan{
	{
		Codigo: "ESSENCIAL_100",
		Nome:   "Plano Essencial 100",
		Mbps:   100,
		Valor:  8499,
		Options: []PlanOption{
			{
				ID:   "UNICA",
				Name: "Combo Standard (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryStandard, Count: 1, Options: standardApps},
				},
			},
		},
	},
	{
		Codigo: "MINI_PLUS_300",
		Nome:   "Plano Mini Plus 300",
		Mbps:   300,
		Valor:  10999,
		Options: []PlanOption{
			{
				ID:   "UNICA",
				Name: "Advanced (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryAdvanced, Count: 1, Options: advancedApps},
				},
			},
		},
	},
	{
		Codigo: "PLUS_300",
		Nome:   "Plano Plus 300",
		Mbps:   300,
		Valor:  11999,
		Options: []PlanOption{
			{
				ID:   "A",
				Name: "Opção A: Top (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryTop, Count: 1, Options: topApps},
				},
			},
			{
				ID:   "B",
				Name: "Opção B: Standard (1 App) + Advanced (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryStandard, Count: 1, Options: standardApps},
					{Category: AppCategoryAdvanced, Count: 1, Options: advancedApps},
				},
			},
		},
	},
	{
		Codigo: "ULTRA_500",
		Nome:   "Plano Ultra 500",
		Mbps:   500,
		Valor:  14999,
		Options: []PlanOption{
			{
				ID:   "A",
				Name: "Opção A: Top (1 App) + Standard (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryTop, Count: 1, Options: topApps},
					{Category: AppCategoryStandard, Count: 1, Options: standardApps},
				},
			},
			{
				ID:   "B",
				Name: "Opção B: Advanced (1 App) + Standard (2 Apps)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryAdvanced, Count: 1, Options: advancedApps},
					{Category: AppCategoryStandard, Count: 2, Options: standardApps},
				},
			},
			{
				ID:   "C",
				Name: "Opção C: Advanced (2 Apps)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryAdvanced, Count: 2, Options: advancedApps},
				},
			},
		},
	},
	{
		Codigo: "PREMIUM_ULTRA_500",
		Nome:   "Plano Premium Ultra 500",
		Mbps:   500,
		Valor:  15999,
		Options: []PlanOption{
			{
				ID:   "UNICA",
				Name: "Premium (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryPremium, Count: 1, Options: premiumApps},
				},
			},
		},
	},
	{
		Codigo: "MAX_700",
		Nome:   "Plano Max 700",
		Mbps:   700,
		Valor:  17999,
		Options: []PlanOption{
			{
				ID:   "A",
				Name: "Opção A: Premium (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryPremium, Count: 1, Options: premiumApps},
				},
			},
			{
				ID:   "B",
				Name: "Opção B: Top (1 App) + Advanced (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryTop, Count: 1, Options: topApps},
					{Category: AppCategoryAdvanced, Count: 1, Options: advancedApps},
				},
			},
		},
	},
	{
		Codigo: "PLUS_MAX_700",
		Nome:   "Plano Plus Max 700",
		Mbps:   700,
		Valor:  19999,
		Options: []PlanOption{
			{
				ID:   "A",
				Name: "Opção A: Premium (2 Apps)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryPremium, Count: 2, Options: premiumApps},
				},
			},
			{
				ID:   "B",
				Name: "Opção B: Top (2 Apps) + Advanced (1 App)",
				Choices: []AppChoiceGroup{
					{Category: AppCategoryTop, Count: 2, Options: topApps},
					{Category: AppCategoryAdvanced, Count: 1, Options: advancedApps},
				},
			},
		},
	},
}
