package sheet

import "strings"

// ColumnName returns the spreadsheet column letters for the 1-based index n
// using bijective base-26: 1 is "A", 26 is "Z", 27 is "AA". It returns ""
// for n < 1.
func ColumnName(n int) string {
	if n < 1 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Width is the widest row in rows, and at least 1.
func Width(rows [][]any) int {
	w := 1
	for _, r := range rows {
		w = max(w, len(r))
	}
	return w
}

// Range returns the A1 range covering the first row of rows on sheetName.
// The append endpoint writes after the last non-empty row whatever the row
// number in the range.
func Range(sheetName string, rows [][]any) string {
	return quoteSheet(sheetName) + "!A1:" + ColumnName(Width(rows)) + "1"
}

func quoteSheet(name string) string {
	plain := true
	for _, r := range name {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			plain = false
			break
		}
	}
	if plain {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
