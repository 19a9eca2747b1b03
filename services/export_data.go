package services

// ExportLine is one labor line item in the export.
type ExportLine struct {
	Subcategory  string
	Task         string
	HoursPerTask float64
	Qty          float64
	Subtotal     float64
}

// ExportCategory is one category of a room: its rounded total and the line
// items behind it.
type ExportCategory struct {
	Total CategoryTotal
	Lines []ExportLine
}

// ExportRoom holds one room's labor estimate.
type ExportRoom struct {
	Name          string
	CeilingHeight CeilingHeight
	Difficulty    Difficulty
	Categories    []ExportCategory
	TotalHours    float64
}

// ExportData holds everything written to the estimate workbook.
type ExportData struct {
	Project       ProjectInfo
	GeneratedDate string
	Rooms         []ExportRoom
	Wires         []Wire
	RackMaterials []RackMaterial
	Materials     MaterialsTotals
}

// TotalHours adds up the rounded hours of every room.
func (d ExportData) TotalHours() float64 {
	var sum float64
	for _, r := range d.Rooms {
		sum += r.TotalHours
	}
	return sum
}
