package widgets

// SelectionMode controls how selecting one cell propagates in a
// MultiColumnList.
type SelectionMode int

const (
	RowSingle SelectionMode = iota
	RowMultiple
	CellSingle
	CellMultiple
	NominatedColumnSingle
	NominatedColumnMultiple
	ColumnSingle
	ColumnMultiple
	NominatedRowSingle
	NominatedRowMultiple
)

var selectionModeNames = [...]string{
	RowSingle:               "RowSingle",
	RowMultiple:             "RowMultiple",
	CellSingle:              "CellSingle",
	CellMultiple:            "CellMultiple",
	NominatedColumnSingle:   "NominatedColumnSingle",
	NominatedColumnMultiple: "NominatedColumnMultiple",
	ColumnSingle:            "ColumnSingle",
	ColumnMultiple:          "ColumnMultiple",
	NominatedRowSingle:      "NominatedRowSingle",
	NominatedRowMultiple:    "NominatedRowMultiple",
}

// String returns the mode name.
func (m SelectionMode) String() string {
	if m >= 0 && int(m) < len(selectionModeNames) {
		return selectionModeNames[m]
	}
	return "SelectionMode(?)"
}

// selectionRules are the flags a SelectionMode expands to.
type selectionRules struct {
	multiSelect     bool
	fullRowSelect   bool
	fullColSelect   bool
	useNominatedRow bool
	useNominatedCol bool
}

// rules expands the mode into its propagation flags.
func (m SelectionMode) rules() selectionRules {
	switch m {
	case RowSingle:
		return selectionRules{fullRowSelect: true}
	case RowMultiple:
		return selectionRules{multiSelect: true, fullRowSelect: true}
	case CellSingle:
		return selectionRules{}
	case CellMultiple:
		return selectionRules{multiSelect: true}
	case NominatedColumnSingle:
		return selectionRules{useNominatedCol: true}
	case NominatedColumnMultiple:
		return selectionRules{multiSelect: true, useNominatedCol: true}
	case ColumnSingle:
		return selectionRules{fullColSelect: true}
	case ColumnMultiple:
		return selectionRules{multiSelect: true, fullColSelect: true}
	case NominatedRowSingle:
		return selectionRules{useNominatedRow: true}
	case NominatedRowMultiple:
		return selectionRules{multiSelect: true, useNominatedRow: true}
	}
	return selectionRules{}
}
