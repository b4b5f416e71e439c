package configurator

import (
	"configurateur-be/internal/catalog"
	"configurateur-be/internal/logger"

	"go.uber.org/zap"
)

// Selection is one visitor's in-progress configuration. The JSON shape
// doubles as the persistence format for projects and quotes.
type Selection struct {
	ProductType string             `json:"product_type"`
	Dimensions  catalog.Dimensions `json:"dimensions"`
	MaterialID  string             `json:"material_id"`
	// Options maps option slug to quantity: 0..n for counters,
	// 0/1 for toggles and choice members.
	Options map[string]int `json:"options"`
}

// Contact accompanies a submitted selection.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// Engine applies validated mutations to a Selection against one
// immutable settings bundle. Every setter returns new state and never
// mutates its input, so callers can treat selections as values.
type Engine struct {
	settings *catalog.Settings
}

func NewEngine(settings *catalog.Settings) *Engine {
	return &Engine{settings: settings}
}

// NewSelection returns the empty state the wizard starts from.
func (e *Engine) NewSelection() Selection {
	return Selection{Options: map[string]int{}}
}

// Settings exposes the bundle the engine was built with.
func (e *Engine) Settings() *catalog.Settings {
	return e.settings
}

// SetProductType switches the product category. Dimensions are
// re-clamped into the new envelope and options that do not belong to
// the new category are dropped. Unknown slugs are ignored.
func (e *Engine) SetProductType(sel Selection, slug string) Selection {
	t := e.settings.ProductTypeBySlug(slug)
	if t == nil {
		logger.L().Debug("ignoring unknown product type", zap.String("slug", slug))
		return sel
	}

	sel.ProductType = slug
	sel.Dimensions = ClampDimensions(t, sel.Dimensions)

	kept := make(map[string]int, len(sel.Options))
	for optSlug, qty := range sel.Options {
		opt := e.settings.OptionBySlug(optSlug)
		if opt != nil && opt.Categorie == t.OptionsCategorie && qty != 0 {
			kept[optSlug] = qty
		}
	}
	sel.Options = kept

	return sel
}

// SetDimensions clamps the proposed values into the active product
// type's envelope. Without a product type the values are stored as-is;
// they get clamped as soon as a type is chosen.
func (e *Engine) SetDimensions(sel Selection, proposed catalog.Dimensions) Selection {
	t := e.settings.ProductTypeBySlug(sel.ProductType)
	if t == nil {
		sel.Dimensions = proposed
		return sel
	}
	sel.Dimensions = ClampDimensions(t, proposed)
	return sel
}

// SetMaterial records the chosen material. Unknown IDs are ignored.
func (e *Engine) SetMaterial(sel Selection, materialID string) Selection {
	if e.settings.MaterialByID(materialID) == nil {
		logger.L().Debug("ignoring unknown material", zap.String("id", materialID))
		return sel
	}
	sel.MaterialID = materialID
	return sel
}

// SetOption sets one option's quantity and keeps the choice-group
// invariant: at most one non-zero member per groupe.
//
// compteur: any value, clamped at 0. toggle: coerced to 0/1.
// choix: a truthy set zeroes every sibling in the groupe first; a falsy
// set is a plain deselect. The option map is replaced wholesale so the
// zero-out and the set are never observable separately.
//
// Options that are inactive, unknown, or belong to another category are
// silently rejected; a correctly filtered UI never sends them.
func (e *Engine) SetOption(sel Selection, slug string, value int) Selection {
	opt := e.settings.OptionBySlug(slug)
	if opt == nil || !opt.Actif {
		logger.L().Debug("ignoring unknown or inactive option", zap.String("slug", slug))
		return sel
	}

	t := e.settings.ProductTypeBySlug(sel.ProductType)
	if t == nil || opt.Categorie != t.OptionsCategorie {
		logger.L().Debug("ignoring option outside product category",
			zap.String("slug", slug),
			zap.String("product_type", sel.ProductType),
		)
		return sel
	}

	next := make(map[string]int, len(sel.Options)+1)
	for k, v := range sel.Options {
		next[k] = v
	}

	switch opt.Type {
	case catalog.OptionCompteur:
		if value < 0 {
			value = 0
		}
		next[slug] = value

	case catalog.OptionToggle:
		if value != 0 {
			value = 1
		}
		next[slug] = value

	case catalog.OptionChoix:
		if value != 0 {
			for _, sibling := range e.settings.Options {
				if sibling.Type == catalog.OptionChoix && sibling.Groupe == opt.Groupe {
					delete(next, sibling.Slug)
				}
			}
			next[slug] = 1
		} else {
			next[slug] = 0
		}
	}

	if next[slug] == 0 {
		delete(next, slug)
	}

	sel.Options = next
	return sel
}

// Quantity returns the selected quantity for a slug (0 when unset).
func (sel Selection) Quantity(slug string) int {
	return sel.Options[slug]
}
