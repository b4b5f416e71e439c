package catalog

// Axis names a dimension of a configurable product. All bounds and
// selection values are millimeters.
type Axis string

const (
	AxisWidth     Axis = "width"
	AxisHeight    Axis = "height"
	AxisDepth     Axis = "depth"
	AxisThickness Axis = "thickness"
)

// Dimensions holds one value per axis, in millimeters.
type Dimensions struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Depth     float64 `json:"depth"`
	Thickness float64 `json:"thickness"`
}

// Get returns the value for the given axis (0 for an unknown axis).
func (d Dimensions) Get(a Axis) float64 {
	switch a {
	case AxisWidth:
		return d.Width
	case AxisHeight:
		return d.Height
	case AxisDepth:
		return d.Depth
	case AxisThickness:
		return d.Thickness
	}
	return 0
}

// Set returns a copy with the given axis replaced.
func (d Dimensions) Set(a Axis, v float64) Dimensions {
	switch a {
	case AxisWidth:
		d.Width = v
	case AxisHeight:
		d.Height = v
	case AxisDepth:
		d.Depth = v
	case AxisThickness:
		d.Thickness = v
	}
	return d
}

// Axes lists every axis in a fixed order.
var Axes = []Axis{AxisWidth, AxisHeight, AxisDepth, AxisThickness}

// OptionCategory is the option bucket a product type draws from.
type OptionCategory string

const (
	CategoryMeuble      OptionCategory = "meuble"
	CategoryPlanTravail OptionCategory = "plan_travail"
	CategoryEtagere     OptionCategory = "etagere"
)

// OptionType is the selection arity of a catalog option.
type OptionType string

const (
	// OptionCompteur is a quantity counter (0..n).
	OptionCompteur OptionType = "compteur"
	// OptionToggle is an on/off switch (0 or 1).
	OptionToggle OptionType = "toggle"
	// OptionChoix is one member of a mutually exclusive choice group.
	OptionChoix OptionType = "choix"
)

// ProductType is a buildable category with its dimension envelope.
type ProductType struct {
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	Icon             string         `json:"icon"`
	DimensionsMin    Dimensions     `json:"dimensions_min"`
	DimensionsMax    Dimensions     `json:"dimensions_max"`
	OptionsCategorie OptionCategory `json:"options_categorie"`
	// AreaAxes is the governing axis pair for the priced surface,
	// e.g. width×depth for a worktop, width×height for a shelf wall.
	AreaAxes  [2]Axis `json:"area_axes"`
	SortOrder int     `json:"sort_order"`
}

// Material is a purchasable board/surface choice.
type Material struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ColorHex  string  `json:"color_hex"`
	PrixM2    float64 `json:"prix_m2"`
	SortOrder int     `json:"sort_order"`
}

// Option is a catalog entry applicable to one option category.
// Groupe is only set for choix options; options sharing a groupe are
// mutually exclusive.
type Option struct {
	Slug      string         `json:"slug"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	Categorie OptionCategory `json:"categorie"`
	Type      OptionType     `json:"type"`
	Groupe    string         `json:"groupe,omitempty"`
	Actif     bool           `json:"actif"`
	SortOrder int            `json:"sort_order"`
}

// Settings is the versioned read-only bundle fetched once per session.
type Settings struct {
	ProductTypes []ProductType     `json:"product_types"`
	Materials    []Material        `json:"materials"`
	Options      []Option          `json:"options"`
	Labels       map[string]string `json:"labels"`
}

// ProductTypeBySlug looks up a product type, nil when absent.
func (s *Settings) ProductTypeBySlug(slug string) *ProductType {
	for i := range s.ProductTypes {
		if s.ProductTypes[i].Slug == slug {
			return &s.ProductTypes[i]
		}
	}
	return nil
}

// MaterialByID looks up a material, nil when absent.
func (s *Settings) MaterialByID(id string) *Material {
	for i := range s.Materials {
		if s.Materials[i].ID == id {
			return &s.Materials[i]
		}
	}
	return nil
}

// OptionBySlug looks up an option, nil when absent.
func (s *Settings) OptionBySlug(slug string) *Option {
	for i := range s.Options {
		if s.Options[i].Slug == slug {
			return &s.Options[i]
		}
	}
	return nil
}

// Validate checks the structural invariants the settings store is
// supposed to guarantee: min ≤ max per axis, non-negative prices,
// groupe present exactly on choix options.
func (t *ProductType) Validate() error {
	for _, a := range Axes {
		if t.DimensionsMin.Get(a) > t.DimensionsMax.Get(a) {
			return ErrInvalidEnvelope
		}
		if t.DimensionsMin.Get(a) <= 0 {
			return ErrInvalidEnvelope
		}
	}
	if t.AreaAxes[0] == "" || t.AreaAxes[1] == "" {
		return ErrInvalidAreaAxes
	}
	return nil
}

func (o *Option) Validate() error {
	if o.Price < 0 {
		return ErrNegativePrice
	}
	if o.Type == OptionChoix && o.Groupe == "" {
		return ErrChoixWithoutGroupe
	}
	if o.Type != OptionChoix && o.Groupe != "" {
		return ErrGroupeOnNonChoix
	}
	return nil
}

func (m *Material) Validate() error {
	if m.PrixM2 < 0 {
		return ErrNegativePrice
	}
	return nil
}
