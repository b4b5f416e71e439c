package configurator

import "configurateur-be/internal/catalog"

// ClampDimensions fits the proposed values into the product type's
// envelope, axis by axis. Values are never rejected, only clamped: the
// wizard must always hold a priceable configuration, whatever is on the
// sliders. A fixed axis (min == max) always comes back as that value.
func ClampDimensions(t *catalog.ProductType, proposed catalog.Dimensions) catalog.Dimensions {
	out := proposed
	for _, a := range catalog.Axes {
		min := t.DimensionsMin.Get(a)
		max := t.DimensionsMax.Get(a)
		v := proposed.Get(a)
		if v < min {
			v = min
		}
		if v > max {
			v = max
		}
		out = out.Set(a, v)
	}
	return out
}
