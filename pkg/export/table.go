package export

// Table defines tabular export content with positional rows.
type Table struct {
	Columns []string
	Rows    [][]string
}
