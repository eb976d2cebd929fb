// Package workcfg models the whole-project work configuration: typed toggles
// and quantities for demolition, electrical, plumbing, heating and openings.
package workcfg

// QualityLevel is a labor-price multiplier tier.
type QualityLevel string

const (
	QualityEconomy  QualityLevel = "economy"
	QualityStandard QualityLevel = "standard"
	QualityPremium  QualityLevel = "premium"
)

// LaborMultiplier returns the fixed labor multiplier for the tier.
// Unknown values fall back to standard.
func (q QualityLevel) LaborMultiplier() float64 {
	switch q {
	case QualityEconomy:
		return 0.85
	case QualityPremium:
		return 1.4
	default:
		return 1.0
	}
}

// ParseQuality maps a free-form string to a QualityLevel.
func ParseQuality(s string) (QualityLevel, bool) {
	switch QualityLevel(s) {
	case QualityEconomy, QualityStandard, QualityPremium:
		return QualityLevel(s), true
	}
	return QualityStandard, false
}

// Electrical configures electrical work counts.
type Electrical struct {
	Enabled        bool `json:"enabled"`
	Outlets        int  `json:"outlets"`
	Switches       int  `json:"switches"`
	LightingPoints int  `json:"lighting_points"`
	ACPoints       int  `json:"ac_points"`
}

// Plumbing configures plumbing fixture counts.
type Plumbing struct {
	Enabled  bool `json:"enabled"`
	Toilets  int  `json:"toilets"`
	Sinks    int  `json:"sinks"`
	Showers  int  `json:"showers"`
	Bathtubs int  `json:"bathtubs"`
}

// Heating configures heating work. UnderfloorArea is capped at the project's
// total floor area when the estimate is calculated.
type Heating struct {
	Enabled        bool    `json:"enabled"`
	Radiators      int     `json:"radiators"`
	UnderfloorArea float64 `json:"underfloor_area"`
	Boiler         bool    `json:"boiler"`
}

// DoorsWindows configures openings work.
type DoorsWindows struct {
	Enabled       bool `json:"enabled"`
	InteriorDoors int  `json:"interior_doors"`
	EntranceDoor  bool `json:"entrance_door"`
}

// WorkCategories is the per-project work configuration. One instance per
// project, not per room.
type WorkCategories struct {
	Demolition   bool         `json:"demolition"`
	Electrical   Electrical   `json:"electrical"`
	Plumbing     Plumbing     `json:"plumbing"`
	Heating      Heating      `json:"heating"`
	DoorsWindows DoorsWindows `json:"doors_windows"`
}

// Defaults returns the standard work configuration used for manual entry and
// for every count the ingestion adapter could not derive from a document.
func Defaults() WorkCategories {
	return WorkCategories{
		Demolition: false,
		Electrical: Electrical{Enabled: true, Outlets: 10, Switches: 6, LightingPoints: 6, ACPoints: 1},
		Plumbing:   Plumbing{Enabled: true, Toilets: 1, Sinks: 2, Showers: 1, Bathtubs: 0},
		Heating:    Heating{Enabled: false, Radiators: 3, UnderfloorArea: 0, Boiler: false},
		DoorsWindows: DoorsWindows{
			Enabled: true, InteriorDoors: 3, EntranceDoor: false,
		},
	}
}

func nonNeg(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ElectricalPatch is a partial electrical update. Nil fields keep current values,
// so toggling Enabled does not clear the counts.
type ElectricalPatch struct {
	Enabled        *bool `json:"enabled,omitempty"`
	Outlets        *int  `json:"outlets,omitempty"`
	Switches       *int  `json:"switches,omitempty"`
	LightingPoints *int  `json:"lighting_points,omitempty"`
	ACPoints       *int  `json:"ac_points,omitempty"`
}

// PlumbingPatch is a partial plumbing update.
type PlumbingPatch struct {
	Enabled  *bool `json:"enabled,omitempty"`
	Toilets  *int  `json:"toilets,omitempty"`
	Sinks    *int  `json:"sinks,omitempty"`
	Showers  *int  `json:"showers,omitempty"`
	Bathtubs *int  `json:"bathtubs,omitempty"`
}

// HeatingPatch is a partial heating update.
type HeatingPatch struct {
	Enabled        *bool    `json:"enabled,omitempty"`
	Radiators      *int     `json:"radiators,omitempty"`
	UnderfloorArea *float64 `json:"underfloor_area,omitempty"`
	Boiler         *bool    `json:"boiler,omitempty"`
}

// DoorsWindowsPatch is a partial openings update.
type DoorsWindowsPatch struct {
	Enabled       *bool `json:"enabled,omitempty"`
	InteriorDoors *int  `json:"interior_doors,omitempty"`
	EntranceDoor  *bool `json:"entrance_door,omitempty"`
}

// MergeElectrical applies the patch at the sub-config level and returns the
// updated configuration. Sibling categories are untouched.
func MergeElectrical(w WorkCategories, p ElectricalPatch) WorkCategories {
	e := w.Electrical
	if p.Enabled != nil {
		e.Enabled = *p.Enabled
	}
	if p.Outlets != nil {
		e.Outlets = nonNeg(*p.Outlets)
	}
	if p.Switches != nil {
		e.Switches = nonNeg(*p.Switches)
	}
	if p.LightingPoints != nil {
		e.LightingPoints = nonNeg(*p.LightingPoints)
	}
	if p.ACPoints != nil {
		e.ACPoints = nonNeg(*p.ACPoints)
	}
	w.Electrical = e
	return w
}

// MergePlumbing applies the patch at the sub-config level.
func MergePlumbing(w WorkCategories, p PlumbingPatch) WorkCategories {
	c := w.Plumbing
	if p.Enabled != nil {
		c.Enabled = *p.Enabled
	}
	if p.Toilets != nil {
		c.Toilets = nonNeg(*p.Toilets)
	}
	if p.Sinks != nil {
		c.Sinks = nonNeg(*p.Sinks)
	}
	if p.Showers != nil {
		c.Showers = nonNeg(*p.Showers)
	}
	if p.Bathtubs != nil {
		c.Bathtubs = nonNeg(*p.Bathtubs)
	}
	w.Plumbing = c
	return w
}

// MergeHeating applies the patch at the sub-config level.
func MergeHeating(w WorkCategories, p HeatingPatch) WorkCategories {
	h := w.Heating
	if p.Enabled != nil {
		h.Enabled = *p.Enabled
	}
	if p.Radiators != nil {
		h.Radiators = nonNeg(*p.Radiators)
	}
	if p.UnderfloorArea != nil {
		h.UnderfloorArea = *p.UnderfloorArea
		if h.UnderfloorArea < 0 {
			h.UnderfloorArea = 0
		}
	}
	if p.Boiler != nil {
		h.Boiler = *p.Boiler
	}
	w.Heating = h
	return w
}

// MergeDoorsWindows applies the patch at the sub-config level.
func MergeDoorsWindows(w WorkCategories, p DoorsWindowsPatch) WorkCategories {
	d := w.DoorsWindows
	if p.Enabled != nil {
		d.Enabled = *p.Enabled
	}
	if p.InteriorDoors != nil {
		d.InteriorDoors = nonNeg(*p.InteriorDoors)
	}
	if p.EntranceDoor != nil {
		d.EntranceDoor = *p.EntranceDoor
	}
	w.DoorsWindows = d
	return w
}
