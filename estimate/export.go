package estimate

import "avestimator/services"

// BuildExport collects every room, category total and material of the view
// into the data written to the estimate workbook. Line items are listed in
// reference-table subcategory order; lists for subcategories no longer in
// the tables are skipped.
func BuildExport(v View, generatedDate string) services.ExportData {
	data := services.ExportData{
		Project:       v.Project(),
		GeneratedDate: generatedDate,
		Wires:         v.Wires(),
		RackMaterials: v.RackMaterials(),
		Materials:     v.MaterialsTotals(),
	}

	for _, room := range v.Rooms() {
		totals := v.RoomTotals(room.ID)
		er := services.ExportRoom{
			Name:          room.Name,
			CeilingHeight: room.CeilingHeight,
			Difficulty:    room.Difficulty(),
			TotalHours:    totals.TotalHours,
		}
		for _, ct := range totals.Categories {
			ec := services.ExportCategory{Total: ct}
			for _, sub := range v.tables.Subcategories(ct.Category) {
				for _, li := range room.Items(ct.Category, sub) {
					ec.Lines = append(ec.Lines, services.ExportLine{
						Subcategory:  sub,
						Task:         li.Name,
						HoursPerTask: li.HoursPerTask,
						Qty:          li.QtyPerTask,
						Subtotal:     li.Subtotal(),
					})
				}
			}
			er.Categories = append(er.Categories, ec)
		}
		data.Rooms = append(data.Rooms, er)
	}
	return data
}
