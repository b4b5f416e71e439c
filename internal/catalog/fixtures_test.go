package catalog

// fixtureSettings returns a small but representative catalog used across
// the package tests.
func fixtureSettings() *Settings {
	return &Settings{
		ProductTypes: []ProductType{
			{
				Slug:             "plan_travail",
				Name:             "Plan de travail",
				DimensionsMin:    Dimensions{Width: 200, Height: 10, Depth: 200, Thickness: 19},
				DimensionsMax:    Dimensions{Width: 4000, Height: 100, Depth: 1200, Thickness: 60},
				OptionsCategorie: CategoryPlanTravail,
				AreaAxes:         [2]Axis{AxisWidth, AxisDepth},
				SortOrder:        1,
			},
			{
				Slug:             "meuble",
				Name:             "Meuble sur mesure",
				DimensionsMin:    Dimensions{Width: 300, Height: 300, Depth: 200, Thickness: 18},
				DimensionsMax:    Dimensions{Width: 2400, Height: 2600, Depth: 800, Thickness: 40},
				OptionsCategorie: CategoryMeuble,
				AreaAxes:         [2]Axis{AxisWidth, AxisHeight},
				SortOrder:        2,
			},
			{
				Slug:             "etagere_fixe",
				Name:             "Étagère fixe",
				DimensionsMin:    Dimensions{Width: 600, Height: 200, Depth: 250, Thickness: 25},
				DimensionsMax:    Dimensions{Width: 600, Height: 200, Depth: 250, Thickness: 25},
				OptionsCategorie: CategoryEtagere,
				AreaAxes:         [2]Axis{AxisWidth, AxisDepth},
				SortOrder:        3,
			},
		},
		Materials: []Material{
			{ID: "mat-hetre", Name: "Hêtre", ColorHex: "#d8b98a", PrixM2: 45, SortOrder: 1},
			{ID: "mat-chene", Name: "Chêne massif", ColorHex: "#b58a4e", PrixM2: 95, SortOrder: 2},
		},
		Options: []Option{
			{Slug: "percage", Name: "Perçage", Price: 5, Categorie: CategoryPlanTravail, Type: OptionCompteur, Actif: true, SortOrder: 1},
			{Slug: "huile_finition", Name: "Finition huilée", Price: 30, Categorie: CategoryPlanTravail, Type: OptionToggle, Actif: true, SortOrder: 2},
			{Slug: "chant_droit", Name: "Chant droit", Price: 0, Categorie: CategoryPlanTravail, Type: OptionChoix, Groupe: "chants", Actif: true, SortOrder: 3},
			{Slug: "chant_arrondi", Name: "Chant arrondi", Price: 12, Categorie: CategoryPlanTravail, Type: OptionChoix, Groupe: "chants", Actif: true, SortOrder: 4},
			{Slug: "tiroir", Name: "Tiroir", Price: 35, Categorie: CategoryMeuble, Type: OptionCompteur, Actif: true, SortOrder: 1},
			{Slug: "pied_rond", Name: "Pied rond", Price: 8, Categorie: CategoryMeuble, Type: OptionChoix, Groupe: "pieds", Actif: true, SortOrder: 2},
			{Slug: "pied_carre", Name: "Pied carré", Price: 8, Categorie: CategoryMeuble, Type: OptionChoix, Groupe: "pieds", Actif: true, SortOrder: 3},
			{Slug: "porte_vitree", Name: "Porte vitrée", Price: 60, Categorie: CategoryMeuble, Type: OptionToggle, Actif: false, SortOrder: 4},
		},
		Labels: map[string]string{
			"step.produit":    "Produit",
			"step.dimensions": "Dimensions",
			"step.materiau":   "Matériau",
			"step.options":    "Options",
			"step.recap":      "Récapitulatif",
		},
	}
}
