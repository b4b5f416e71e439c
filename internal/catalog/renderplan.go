package catalog

import "sort"

// RenderEntryKind discriminates the two shapes a plan entry can take.
type RenderEntryKind string

const (
	// EntryOption is a standalone compteur or toggle.
	EntryOption RenderEntryKind = "option"
	// EntryGroup is an exclusive-choice group rendered once.
	EntryGroup RenderEntryKind = "groupe"
)

// RenderEntry is one row of the configurator's options step: either a
// single counter/toggle, or a whole choice group.
type RenderEntry struct {
	Kind   RenderEntryKind `json:"kind"`
	Option *Option         `json:"option,omitempty"`
	// Groupe and Members are set for EntryGroup entries only.
	Groupe  string   `json:"groupe,omitempty"`
	Members []Option `json:"members,omitempty"`
}

// RenderPlan is the ordered, deterministic layout of the options step
// for one product type.
type RenderPlan struct {
	Entries []RenderEntry `json:"entries"`
}

// ResolveOptions filters the catalog to active entries matching the
// product type's option category and lays them out for rendering.
//
// Single pass over the sorted catalog: the first member of a choix
// groupe emits the group entry and fixes its position; later members
// attach to it. Counters and toggles keep their catalog position.
// Given the same catalog and product type the plan is always identical.
func ResolveOptions(settings *Settings, productType *ProductType) *RenderPlan {
	active := make([]Option, 0, len(settings.Options))
	for _, o := range settings.Options {
		if o.Actif && o.Categorie == productType.OptionsCategorie {
			active = append(active, o)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].SortOrder != active[j].SortOrder {
			return active[i].SortOrder < active[j].SortOrder
		}
		return active[i].Slug < active[j].Slug
	})

	plan := &RenderPlan{Entries: make([]RenderEntry, 0, len(active))}
	groupIndex := make(map[string]int)

	for _, o := range active {
		if o.Type != OptionChoix {
			o := o
			plan.Entries = append(plan.Entries, RenderEntry{
				Kind:   EntryOption,
				Option: &o,
			})
			continue
		}

		if idx, seen := groupIndex[o.Groupe]; seen {
			plan.Entries[idx].Members = append(plan.Entries[idx].Members, o)
			continue
		}

		groupIndex[o.Groupe] = len(plan.Entries)
		plan.Entries = append(plan.Entries, RenderEntry{
			Kind:    EntryGroup,
			Groupe:  o.Groupe,
			Members: []Option{o},
		})
	}

	return plan
}
