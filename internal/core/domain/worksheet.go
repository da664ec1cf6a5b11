package domain

// Worksheet is a batch of reactions loaded from a file.
type Worksheet struct {
	// Path is the file the worksheet was read from.
	Path string

	// Entries are in file order.
	Entries []WorksheetEntry
}

// WorksheetEntry is one reaction in a worksheet.
type WorksheetEntry struct {
	Name     string
	Equation string

	// Moles holds the initial reactant amounts, empty for balance only.
	Moles []float64
}

// WorksheetResult is the outcome of one entry. Exactly one of
// Calculation and Err is set.
type WorksheetResult struct {
	Entry       WorksheetEntry
	Calculation *Calculation
	Err         error
}
