package thali

import "strings"

// Describe formats one thali as a single display line:
//
//	RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00
//
// v may be a Thali, a non-nil *Thali, or a Record (or plain map) whose key set
// is exactly Fields with a string name, a list of items and a numeric price.
// Any other input yields "".
func Describe(v any) string {
	t, ok := strictThali(v)
	if !ok {
		return ""
	}
	return t.describe()
}

func strictThali(v any) (Thali, bool) {
	switch r := v.(type) {
	case Thali:
		return r, true
	case *Thali:
		if r == nil {
			return Thali{}, false
		}
		return *r, true
	case Record:
		return r.Strict()
	case map[string]any:
		return Record(r).Strict()
	}
	return Thali{}, false
}

func (t Thali) describe() string {
	var b strings.Builder

	b.WriteString(upper(t.Name))
	b.WriteString(" (")
	b.WriteString(t.dietLabel())
	b.WriteString(") - Items: ")
	b.WriteString(strings.Join(t.Items, ", "))
	b.WriteString(" - Rs.")
	b.WriteString(FormatFixed(t.Price, 2))

	return b.String()
}

func (t Thali) dietLabel() string {
	if t.IsVeg {
		return "Veg"
	}
	return "Non-Veg"
}
