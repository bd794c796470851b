// =============================================================================
// People CSV Loader - XML Writer Module
// =============================================================================
//
// This module generates an XML document from a load result.
//
// XML STRUCTURE:
//
//   <people>                                   <!-- Root element -->
//     <departments>                            <!-- Every distinct department -->
//       <department id="1">Sales</department>
//       <department id="2">R&amp;D</department>
//     </departments>
//     <person id="1">                          <!-- One element per record -->
//       <name>John Smith</name>
//       <gender>MALE</gender>
//       <birthDate>01.02.1990</birthDate>
//       <departmentId>1</departmentId>          <!-- References a department -->
//       <salary>1000.5</salary>
//     </person>
//   </people>
//
// Persons appear in file order, departments in first-seen order.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

// =============================================================================
// ELEMENT NAMES
// =============================================================================

const (
	rootElement        = "people"
	departmentsElement = "departments"
	departmentElement  = "department"
	personElement      = "person"
	idAttribute        = "id"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the indentation string (e.g., "  " for 2 spaces).
	Indent string

	// IncludeXMLDeclaration adds <?xml version="1.0" encoding="UTF-8"?>.
	IncludeXMLDeclaration bool

	// XMLVersion is the XML version for the declaration.
	XMLVersion string

	// Encoding is the character encoding for the declaration.
	Encoding string

	// RootAttributes are added to the root element, in key order.
	RootAttributes map[string]string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		XMLVersion:            "1.0",
		Encoding:              "UTF-8",
		RootAttributes:        make(map[string]string),
	}
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// Generate creates an XML document from a load result.
//
// PARAMETERS:
//   - result: A successful load result.
//
// RETURNS:
//   - The XML document as a byte slice.
//   - An error if generation fails.
func Generate(result *csvparser.LoadResult) ([]byte, error) {
	return GenerateWithOptions(result, DefaultGenerateOptions())
}

// GenerateWithOptions creates an XML document with custom options.
func GenerateWithOptions(result *csvparser.LoadResult, options GenerateOptions) ([]byte, error) {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(fmt.Sprintf("<?xml version=\"%s\" encoding=\"%s\"?>\n",
			options.XMLVersion, options.Encoding))
	}

	doc := buildDocument(result, options)

	xmlBytes, err := marshalWithIndent(doc, options.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal XML: %w", err)
	}

	buffer.Write(xmlBytes)

	return buffer.Bytes(), nil
}

// =============================================================================
// XML DOCUMENT STRUCTURE
// =============================================================================

// XMLElement is a generic XML element with attributes, text or children.
type XMLElement struct {
	XMLName    xml.Name
	Attributes []xml.Attr
	Value      string
	Children   []XMLElement
}

// buildDocument builds the element tree of a load result.
func buildDocument(result *csvparser.LoadResult, options GenerateOptions) XMLElement {
	doc := XMLElement{
		XMLName: xml.Name{Local: rootElement},
	}

	keys := make([]string, 0, len(options.RootAttributes))
	for key := range options.RootAttributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		doc.Attributes = append(doc.Attributes, xml.Attr{
			Name:  xml.Name{Local: key},
			Value: options.RootAttributes[key],
		})
	}

	departments := XMLElement{
		XMLName:  xml.Name{Local: departmentsElement},
		Children: make([]XMLElement, 0, len(result.Departments)),
	}
	for _, dep := range result.Departments {
		departments.Children = append(departments.Children, buildDepartmentElement(dep))
	}
	doc.Children = append(doc.Children, departments)

	for _, person := range result.People {
		doc.Children = append(doc.Children, buildPersonElement(person))
	}

	return doc
}

// buildDepartmentElement builds <department id="N">Name</department>.
func buildDepartmentElement(dep types.Department) XMLElement {
	return XMLElement{
		XMLName:    xml.Name{Local: departmentElement},
		Attributes: []xml.Attr{idAttr(dep.ID)},
		Value:      dep.Name,
	}
}

// buildPersonElement builds a <person> element with one child per field.
func buildPersonElement(p types.Person) XMLElement {
	return XMLElement{
		XMLName:    xml.Name{Local: personElement},
		Attributes: []xml.Attr{idAttr(p.ID)},
		Children: []XMLElement{
			createSimpleElement("name", p.Name),
			createSimpleElement("gender", p.Gender.String()),
			createSimpleElement("birthDate", p.BirthDate.Format(types.BirthDateLayout)),
			createSimpleElement("departmentId", strconv.Itoa(p.DepartmentID)),
			createSimpleElement("salary", strconv.FormatFloat(p.Salary, 'f', -1, 64)),
		},
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// createSimpleElement creates a simple XML element with a text value.
func createSimpleElement(name, value string) XMLElement {
	return XMLElement{
		XMLName: xml.Name{Local: name},
		Value:   value,
	}
}

func idAttr(id int) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: idAttribute}, Value: strconv.Itoa(id)}
}

// marshalWithIndent marshals the document with proper indentation.
func marshalWithIndent(doc XMLElement, indent string) ([]byte, error) {
	var buffer bytes.Buffer
	writeElement(&buffer, doc, indent, 0)
	return buffer.Bytes(), nil
}

// writeElement writes an element and its children recursively.
// Elements without text or children are self-closed.
func writeElement(buffer *bytes.Buffer, element XMLElement, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.XMLName.Local)

	for _, attr := range element.Attributes {
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name.Local, escapeXML(attr.Value)))
	}

	if len(element.Children) == 0 && element.Value == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if len(element.Children) == 0 {
		buffer.WriteString(escapeXML(element.Value))
	} else {
		buffer.WriteString("\n")

		for _, child := range element.Children {
			writeElement(buffer, child, indent, level+1)
		}

		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.XMLName.Local)
	buffer.WriteString(">\n")
}

// escapeXML escapes special characters for XML text and attributes.
func escapeXML(s string) string {
	var buffer bytes.Buffer
	if err := xml.EscapeText(&buffer, []byte(s)); err != nil {
		return s
	}
	return buffer.String()
}
