package models

import "fmt"

// FileFormat is a locale download format understood by Phrase.
type FileFormat string

const (
	FormatJSON       FileFormat = "json"
	FormatSimpleJSON FileFormat = "simple_json"
	FormatNestedJSON FileFormat = "nested_json"
	FormatProperties FileFormat = "properties"
	FormatYAML       FileFormat = "yml"
	FormatCSV        FileFormat = "csv"
	FormatXLIFF      FileFormat = "xlf"
	FormatStrings    FileFormat = "strings"
	FormatAndroidXML FileFormat = "xml"
	FormatGettext    FileFormat = "gettext"
)

var fileFormats = map[FileFormat]struct{}{
	FormatJSON:       {},
	FormatSimpleJSON: {},
	FormatNestedJSON: {},
	FormatProperties: {},
	FormatYAML:       {},
	FormatCSV:        {},
	FormatXLIFF:      {},
	FormatStrings:    {},
	FormatAndroidXML: {},
	FormatGettext:    {},
}

// Validate reports whether f is a known format.
func (f FileFormat) Validate() error {
	if _, ok := fileFormats[f]; !ok {
		return fmt.Errorf("unknown file format %q", string(f))
	}
	return nil
}

func (f FileFormat) String() string { return string(f) }
