package services

import (
	"strconv"
	"strings"
)

// RackMaterialUnitCost is the flat per-unit rate for every rack material
// type. There is no per-type price list yet.
const RackMaterialUnitCost = 10.0

// WirePricer returns the price per 1000 ft for a cable type.
type WirePricer interface {
	WirePrice(wireType string) (float64, bool)
}

// WirePriceTable is a WirePricer backed by a plain map.
type WirePriceTable map[string]float64

func (t WirePriceTable) WirePrice(wireType string) (float64, bool) {
	p, ok := t[wireType]
	return p, ok
}

// Wire is one cable run. Length holds the text as typed so a partial number
// survives between keystrokes; Cost is always derived.
type Wire struct {
	Type     string  `json:"type"`
	Length   string  `json:"length"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type WireField string

const (
	WireFieldType     WireField = "type"
	WireFieldLength   WireField = "length"
	WireFieldQuantity WireField = "quantity"
)

// NewWire returns an empty run: no type, zero length, one cable.
func NewWire() Wire {
	return Wire{Length: "0", Quantity: 1}
}

// LengthFeet parses the typed length. Anything unparsable or negative is 0.
func (w Wire) LengthFeet() float64 {
	v, ok := parseLeadingFloat(w.Length)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// WireCost is length/1000 x price-per-1000ft x quantity, or 0 for an
// unpriced type.
func WireCost(p WirePricer, w Wire) float64 {
	if p == nil {
		return 0
	}
	price, ok := p.WirePrice(w.Type)
	if !ok {
		return 0
	}
	return (w.LengthFeet() / 1000) * price * float64(w.Quantity)
}

// UpdateWire applies one field edit and recomputes the cost.
func UpdateWire(p WirePricer, w Wire, field WireField, raw string) Wire {
	switch field {
	case WireFieldType:
		w.Type = strings.TrimSpace(raw)
	case WireFieldLength:
		w.Length = raw
	case WireFieldQuantity:
		w.Quantity = ParseQuantity(raw)
	}
	w.Quantity = max(1, w.Quantity)
	w.Cost = WireCost(p, w)
	return w
}

// NormalizeWireLength replaces the typed length with its parsed value, or
// with "" when nothing numeric was entered. Called when the field loses focus.
func NormalizeWireLength(p WirePricer, w Wire) Wire {
	if v, ok := parseLeadingFloat(w.Length); ok {
		w.Length = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		w.Length = ""
	}
	w.Cost = WireCost(p, w)
	return w
}

// RecalculateWires returns a copy of wires with every cost recomputed.
func RecalculateWires(p WirePricer, wires []Wire) []Wire {
	out := make([]Wire, len(wires))
	for i, w := range wires {
		w.Quantity = max(1, w.Quantity)
		w.Cost = WireCost(p, w)
		out[i] = w
	}
	return out
}

type RackMaterial struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type RackMaterialField string

const (
	RackMaterialFieldType     RackMaterialField = "type"
	RackMaterialFieldQuantity RackMaterialField = "quantity"
)

func NewRackMaterial() RackMaterial {
	return RackMaterial{Quantity: 1, Cost: RackMaterialCost(1)}
}

// RackMaterialCost is quantity x RackMaterialUnitCost regardless of type.
func RackMaterialCost(quantity int) float64 {
	return float64(quantity) * RackMaterialUnitCost
}

// UpdateRackMaterial applies one field edit and recomputes the cost.
func UpdateRackMaterial(m RackMaterial, field RackMaterialField, raw string) RackMaterial {
	switch field {
	case RackMaterialFieldType:
		m.Type = strings.TrimSpace(raw)
	case RackMaterialFieldQuantity:
		m.Quantity = ParseQuantity(raw)
	}
	m.Quantity = max(1, m.Quantity)
	m.Cost = RackMaterialCost(m.Quantity)
	return m
}

type MaterialsTotals struct {
	Wires         float64
	RackMaterials float64
	Total         float64
}

func SummarizeMaterials(wires []Wire, materials []RackMaterial) MaterialsTotals {
	var t MaterialsTotals
	for _, w := range wires {
		t.Wires += w.Cost
	}
	for _, m := range materials {
		t.RackMaterials += m.Cost
	}
	t.Total = t.Wires + t.RackMaterials
	return t
}
