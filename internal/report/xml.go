// =============================================================================
// Thali Combo - XML Menu Export
// =============================================================================
//
// WriteXML renders a menu as XML:
//
//   <menu>
//     <thali n="1" veg="true">
//       <name>Rajasthani Thali</name>
//       <item n="1">dal</item>
//       <item n="2">churma</item>
//       <price>250</price>
//       <description>RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00</description>
//     </thali>
//     <thali n="2" veg="false">
//       <name>Hyderabadi Thali</name>
//       <item n="3">biryani</item>          <!-- global numbering continues -->
//       ...
//     </thali>
//     <summary>
//       <totalThalis>2</totalThalis>
//       ...
//     </summary>
//   </menu>
//
// =============================================================================

package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

// XMLOptions controls XML rendering.
type XMLOptions struct {
	// Indent is the string used for one level of indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeDeclaration writes the <?xml ...?> header.
	IncludeDeclaration bool

	// GlobalItemNumbering numbers items 1, 2, 3... across the whole menu.
	// If false, numbering restarts at 1 for each thali.
	GlobalItemNumbering bool
}

// DefaultXMLOptions returns the options used by the export command.
func DefaultXMLOptions() XMLOptions {
	return XMLOptions{
		Indent:              "  ",
		IncludeDeclaration:  true,
		GlobalItemNumbering: true,
	}
}

// element is a node of the rendered document. An element has either a value
// or children.
type element struct {
	name     string
	attrs    []xml.Attr
	value    string
	children []element
}

func leaf(name, value string) element {
	return element{name: name, value: value}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// WriteXML writes the XML export of entries to w.
func WriteXML(w io.Writer, entries []any, options XMLOptions) error {
	if options.Indent == "" {
		options.Indent = "  "
	}

	var buf bytes.Buffer
	if options.IncludeDeclaration {
		buf.WriteString(xml.Header)
	}
	writeElement(&buf, buildMenu(entries, options), options.Indent, 0)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}
	return nil
}

func buildMenu(entries []any, options XMLOptions) element {
	root := element{name: "menu"}

	thalis, _ := thali.Collect(entries)
	itemIndex := 1
	for i, t := range thalis {
		if !options.GlobalItemNumbering {
			itemIndex = 1
		}
		root.children = append(root.children, buildThali(i+1, t, thali.Describe(entries[i]), &itemIndex))
	}

	if summary := thali.Stats(thalis); summary != nil {
		root.children = append(root.children, buildSummary(summary))
	}

	return root
}

func buildThali(n int, t thali.Thali, description string, itemIndex *int) element {
	el := element{
		name: "thali",
		attrs: []xml.Attr{
			attr("n", strconv.Itoa(n)),
			attr("veg", strconv.FormatBool(t.IsVeg)),
		},
	}

	el.children = append(el.children, leaf("name", t.Name))
	for _, item := range t.Items {
		el.children = append(el.children, element{
			name:  "item",
			attrs: []xml.Attr{attr("n", strconv.Itoa(*itemIndex))},
			value: item,
		})
		*itemIndex++
	}
	el.children = append(el.children, leaf("price", thali.FormatNumber(t.Price)))
	if description != "" {
		el.children = append(el.children, leaf("description", description))
	}

	return el
}

func buildSummary(s *thali.Summary) element {
	el := element{name: "summary"}
	el.children = []element{
		leaf("totalThalis", strconv.Itoa(s.TotalThalis)),
		leaf("vegCount", strconv.Itoa(s.VegCount)),
		leaf("nonVegCount", strconv.Itoa(s.NonVegCount)),
		leaf("avgPrice", s.AvgPrice),
		leaf("cheapest", thali.FormatNumber(s.Cheapest)),
		leaf("costliest", thali.FormatNumber(s.Costliest)),
	}
	names := element{name: "names"}
	for _, name := range s.Names {
		names.children = append(names.children, leaf("name", name))
	}
	el.children = append(el.children, names)
	return el
}

// writeElement writes el and its children with one indent per level. Empty
// elements are self-closing.
func writeElement(buf *bytes.Buffer, el element, indent string, level int) {
	writeIndent(buf, indent, level)

	buf.WriteString("<")
	buf.WriteString(el.name)
	for _, a := range el.attrs {
		buf.WriteString(" ")
		buf.WriteString(a.Name.Local)
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(a.Value))
		buf.WriteString(`"`)
	}

	if len(el.children) == 0 && el.value == "" {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">")

	if len(el.children) == 0 {
		xml.EscapeText(buf, []byte(el.value))
	} else {
		buf.WriteString("\n")
		for _, child := range el.children {
			writeElement(buf, child, indent, level+1)
		}
		writeIndent(buf, indent, level)
	}

	buf.WriteString("</")
	buf.WriteString(el.name)
	buf.WriteString(">\n")
}

func writeIndent(buf *bytes.Buffer, indent string, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString(indent)
	}
}
