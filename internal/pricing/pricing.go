package pricing

import (
	"math"

	"configurateur-be/internal/catalog"
	"configurateur-be/internal/configurator"
)

// Breakdown is the derived price of a selection. It is recomputed in
// full on every mutation and never stored independently, so it can
// never be partially stale.
type Breakdown struct {
	SubtotalHT float64 `json:"subtotal_ht"`
	TVA        float64 `json:"tva"`
	TotalTTC   float64 `json:"total_ttc"`
}

// Calculator prices selections against one settings bundle and one tax
// rate. It holds no mutable state; Compute is a pure function of its
// inputs.
type Calculator struct {
	settings *catalog.Settings
	taxRate  float64
}

func NewCalculator(settings *catalog.Settings, taxRate float64) *Calculator {
	return &Calculator{settings: settings, taxRate: taxRate}
}

// Compute derives the full price of a selection.
//
// The priced surface comes from the product type's governing axis pair
// (width×depth for a worktop, width×height for a wall unit); adding a
// product type never touches this code. Costs accumulate in floating
// point and are rounded half-up to centimes only at the subtotal, tax
// and total boundaries, so intermediate rounding never compounds.
//
// An incomplete selection prices whatever is there: no product type or
// no material simply contributes zero. The configurator always shows a
// live price, it never blocks.
func (c *Calculator) Compute(sel configurator.Selection) Breakdown {
	var subtotal float64

	t := c.settings.ProductTypeBySlug(sel.ProductType)
	if t != nil {
		if m := c.settings.MaterialByID(sel.MaterialID); m != nil {
			subtotal += c.surfaceArea(t, sel.Dimensions) * m.PrixM2
		}
		subtotal += c.optionsCost(t, sel)
	}

	subtotalHT := round2(subtotal)
	tva := round2(subtotalHT * c.taxRate)
	totalTTC := round2(subtotalHT + tva)

	return Breakdown{
		SubtotalHT: subtotalHT,
		TVA:        tva,
		TotalTTC:   totalTTC,
	}
}

// surfaceArea returns the priced surface in m² from the governing axes.
func (c *Calculator) surfaceArea(t *catalog.ProductType, d catalog.Dimensions) float64 {
	a := d.Get(t.AreaAxes[0]) / 1000
	b := d.Get(t.AreaAxes[1]) / 1000
	return a * b
}

func (c *Calculator) optionsCost(t *catalog.ProductType, sel configurator.Selection) float64 {
	var cost float64
	for slug, qty := range sel.Options {
		if qty <= 0 {
			continue
		}
		opt := c.settings.OptionBySlug(slug)
		if opt == nil || !opt.Actif || opt.Categorie != t.OptionsCategorie {
			continue
		}
		cost += opt.Price * float64(qty)
	}
	return cost
}

// round2 rounds half-up to 2 decimals, the convention on invoices.
// math.Round would do banker's-adjacent behavior on negatives; amounts
// here are never negative so floor(x*100+0.5) is exact enough.
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
