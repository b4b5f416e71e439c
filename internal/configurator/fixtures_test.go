package configurator

import "configurateur-be/internal/catalog"

func testSettings() *catalog.Settings {
	return &catalog.Settings{
		ProductTypes: []catalog.ProductType{
			{
				Slug:             "plan_travail",
				Name:             "Plan de travail",
				DimensionsMin:    catalog.Dimensions{Width: 200, Height: 10, Depth: 200, Thickness: 19},
				DimensionsMax:    catalog.Dimensions{Width: 4000, Height: 100, Depth: 1200, Thickness: 60},
				OptionsCategorie: catalog.CategoryPlanTravail,
				AreaAxes:         [2]catalog.Axis{catalog.AxisWidth, catalog.AxisDepth},
			},
			{
				Slug:             "meuble",
				Name:             "Meuble sur mesure",
				DimensionsMin:    catalog.Dimensions{Width: 300, Height: 300, Depth: 200, Thickness: 18},
				DimensionsMax:    catalog.Dimensions{Width: 2400, Height: 2600, Depth: 800, Thickness: 40},
				OptionsCategorie: catalog.CategoryMeuble,
				AreaAxes:         [2]catalog.Axis{catalog.AxisWidth, catalog.AxisHeight},
			},
			{
				Slug:             "etagere_fixe",
				Name:             "Étagère fixe",
				DimensionsMin:    catalog.Dimensions{Width: 600, Height: 200, Depth: 250, Thickness: 25},
				DimensionsMax:    catalog.Dimensions{Width: 600, Height: 200, Depth: 250, Thickness: 25},
				OptionsCategorie: catalog.CategoryEtagere,
				AreaAxes:         [2]catalog.Axis{catalog.AxisWidth, catalog.AxisDepth},
			},
		},
		Materials: []catalog.Material{
			{ID: "mat-hetre", Name: "Hêtre", PrixM2: 45},
			{ID: "mat-chene", Name: "Chêne massif", PrixM2: 95},
		},
		Options: []catalog.Option{
			{Slug: "percage", Price: 5, Categorie: catalog.CategoryPlanTravail, Type: catalog.OptionCompteur, Actif: true, SortOrder: 1},
			{Slug: "huile_finition", Price: 30, Categorie: catalog.CategoryPlanTravail, Type: catalog.OptionToggle, Actif: true, SortOrder: 2},
			{Slug: "tiroir", Price: 35, Categorie: catalog.CategoryMeuble, Type: catalog.OptionCompteur, Actif: true, SortOrder: 1},
			{Slug: "pied_rond", Price: 8, Categorie: catalog.CategoryMeuble, Type: catalog.OptionChoix, Groupe: "pieds", Actif: true, SortOrder: 2},
			{Slug: "pied_carre", Price: 8, Categorie: catalog.CategoryMeuble, Type: catalog.OptionChoix, Groupe: "pieds", Actif: true, SortOrder: 3},
			{Slug: "porte_vitree", Price: 60, Categorie: catalog.CategoryMeuble, Type: catalog.OptionToggle, Actif: false, SortOrder: 4},
		},
		Labels: map[string]string{},
	}
}
