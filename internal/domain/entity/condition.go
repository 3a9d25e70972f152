package entity

// Condition grades the physical state of a listed book.
type Condition string

const (
	ConditionAsNew    Condition = "As New"
	ConditionFine     Condition = "Fine"
	ConditionVeryGood Condition = "Very Good"
	ConditionGood     Condition = "Good"
	ConditionFair     Condition = "Fair"
	ConditionPoor     Condition = "Poor"
)

var conditionDescriptions = []struct {
	condition   Condition
	description string
}{
	{ConditionAsNew, "Book looks new and has no defects. May show remainder marks."},
	{ConditionFine, "Book may show slight wear at edges of book or dust jackets."},
	{ConditionVeryGood, "Book has clear signs of wear. May have minor defects including remainder marks, owner inscription, or clipped/chipped dust jacket."},
	{ConditionGood, "Book may have a greater degree of defects, including highlighting, library markings, or loose bindings."},
	{ConditionFair, "Book may be very worn, soiled, torn, or barely holding together."},
	{ConditionPoor, "Book may have extensive damage. Parts may be missing."},
}

// Conditions returns every condition from best to worst.
func Conditions() []Condition {
	out := make([]Condition, 0, len(conditionDescriptions))
	for _, d := range conditionDescriptions {
		out = append(out, d.condition)
	}

	return out
}

// ParseCondition matches s against the known conditions.
func ParseCondition(s string) (Condition, bool) {
	for _, d := range conditionDescriptions {
		if string(d.condition) == s {
			return d.condition, true
		}
	}

	return "", false
}

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	_, ok := ParseCondition(string(c))

	return ok
}

// Description returns the human readable grading note for c.
func (c Condition) Description() string {
	for _, d := range conditionDescriptions {
		if d.condition == c {
			return d.description
		}
	}

	return ""
}
