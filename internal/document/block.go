// Package document turns a patient's diet plan into an ordered sequence
// of layout blocks and renders them through a pluggable Builder. The
// block sequence is the unit under test; the Builder owns the actual
// output format.
package document

// Block is one element of the composed document, in emission order.
type Block interface{ block() }

// Title is the top-level document heading.
type Title struct{ Text string }

// Subtitle is a section heading (patient info, totals, advice).
type Subtitle struct{ Text string }

// PatientInfo lists the patient's identity lines; absent optional fields
// produce no line.
type PatientInfo struct{ Lines []string }

// MealHeading introduces a meal section. Instruction is the "choose"
// line rendered under the meal name.
type MealHeading struct {
	Text        string
	Instruction string
}

// Table renders one column per nutrition category with the category
// header on top; shorter columns are padded with empty cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// BulletList renders one bulleted line per food combination.
type BulletList struct{ Lines []string }

// Note is free text attached to a meal or to the whole plan; bold
// markup has already been resolved into spans.
type Note struct{ Spans []Span }

// TotalsTable is the daily nutrient summary.
type TotalsTable struct {
	Headers []string
	Values  []string
}

// AdviceList renders the general-advice lines, each resolved into
// plain/bold spans.
type AdviceList struct{ Items [][]Span }

func (Title) block()       {}
func (Subtitle) block()    {}
func (PatientInfo) block() {}
func (MealHeading) block() {}
func (Table) block()       {}
func (BulletList) block()  {}
func (Note) block()        {}
func (TotalsTable) block() {}
func (AdviceList) block()  {}
