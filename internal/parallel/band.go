package parallel

// Band is a horizontal strip of rows [Y, Y+Height).
type Band struct {
	Y      int
	Height int
}

// SplitRows divides height rows into bands of about rows rows each.
// Every band except the last starts and ends on a multiple of align
// (align <= 1 means no alignment). If rows is not positive the rows are
// spread over parts bands instead.
func SplitRows(height, rows, parts, align int) []Band {
	if height <= 0 {
		return nil
	}
	align = max(align, 1)
	if rows <= 0 {
		parts = max(parts, 1)
		rows = (height + parts - 1) / parts
	}
	rows = (rows + align - 1) / align * align

	bands := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		bands = append(bands, Band{Y: y, Height: min(rows, height-y)})
	}
	return bands
}
