package models

import "fmt"

// ActivityCategory is the closed set of activities the tracker understands.
type ActivityCategory string

const (
	CategoryElectricity ActivityCategory = "electricity"
	CategoryPetrol      ActivityCategory = "petrol"
	CategoryDiesel      ActivityCategory = "diesel"
	CategoryCar         ActivityCategory = "car"
	CategoryBus         ActivityCategory = "bus"
	CategoryMotorbike   ActivityCategory = "motorbike"
	CategoryFood        ActivityCategory = "food"
	CategoryElectronics ActivityCategory = "electronics"
	CategoryClothing    ActivityCategory = "clothing"
)

// EmissionFactor converts an activity quantity into kg CO2e.
type EmissionFactor struct {
	PerUnit float64
	Unit    string
}

// Factor returns the emission factor for the category. The table is fixed
// for the lifetime of the process; entries record their CO2e at insertion,
// so the factors here never retroactively change logged data.
func (c ActivityCategory) Factor() (EmissionFactor, bool) {
	switch c {
	case CategoryElectricity:
		return EmissionFactor{PerUnit: 0.18, Unit: "kWh"}, true
	case CategoryPetrol:
		return EmissionFactor{PerUnit: 2.31, Unit: "liter"}, true
	case CategoryDiesel:
		return EmissionFactor{PerUnit: 2.68, Unit: "liter"}, true
	case CategoryCar:
		return EmissionFactor{PerUnit: 0.12, Unit: "km"}, true
	case CategoryBus:
		return EmissionFactor{PerUnit: 0.05, Unit: "km"}, true
	case CategoryMotorbike:
		return EmissionFactor{PerUnit: 0.08, Unit: "km"}, true
	case CategoryFood:
		return EmissionFactor{PerUnit: 2.5, Unit: "meal"}, true
	case CategoryElectronics:
		return EmissionFactor{PerUnit: 50, Unit: "item"}, true
	case CategoryClothing:
		return EmissionFactor{PerUnit: 15, Unit: "item"}, true
	}
	return EmissionFactor{}, false
}

// Categories lists every known category in declaration order.
func Categories() []ActivityCategory {
	return []ActivityCategory{
		CategoryElectricity,
		CategoryPetrol,
		CategoryDiesel,
		CategoryCar,
		CategoryBus,
		CategoryMotorbike,
		CategoryFood,
		CategoryElectronics,
		CategoryClothing,
	}
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(raw string) (ActivityCategory, error) {
	c := ActivityCategory(raw)
	if _, ok := c.Factor(); !ok {
		return "", &ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category %q", raw),
		}
	}
	return c, nil
}
