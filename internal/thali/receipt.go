package thali

import (
	"fmt"
	"strings"
)

// Receipt renders an order receipt for customerName:
//
//	THALI RECEIPT
//	---
//	Customer: RAMESH
//	- Thali A x Rs.100
//	---
//	Total: Rs.100
//	Items: 1
//
// Prices are printed as plain numbers, without the two-decimal padding
// Describe uses. An empty order yields "".
func Receipt(customerName string, thalis []Thali) string {
	if len(thalis) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("THALI RECEIPT\n---\nCustomer: ")
	b.WriteString(upper(customerName))

	total := 0.0
	for _, t := range thalis {
		fmt.Fprintf(&b, "\n- %s x Rs.%s", t.Name, FormatNumber(t.Price))
		total += t.Price
	}

	fmt.Fprintf(&b, "\n---\nTotal: Rs.%s\nItems: %d", FormatNumber(total), len(thalis))

	return b.String()
}

// ReceiptOf is Receipt over decoded values: customerName must be a string and
// v a non-empty sequence, otherwise the result is "".
//
// A numeric text price such as "100" is converted before it is added, so it
// counts as 100 toward the total. It is never concatenated onto the total as
// text, which would print "Total: Rs.0100".
func ReceiptOf(customerName any, v any) string {
	name, ok := customerName.(string)
	if !ok {
		return ""
	}
	thalis, ok := Collect(v)
	if !ok {
		return ""
	}
	return Receipt(name, thalis)
}
