// Package tabular moves parameters and generated test cases in and out of
// row/column text and spreadsheets.
//
// Parameter template (import and export):
//
//	OS;Browser;Locale
//	linux,mac;chrome,firefox;en
//	windows;;de
//
// The header row holds `;`-separated parameter names. Every following row
// holds `;`-separated cells; each cell is a `,`-separated list of values for
// the parameter in the same column. Values are trimmed, blanks are dropped
// and duplicates collapse to their first occurrence. Blank lines are
// ignored. A column with an empty header is skipped; a parameter that ends
// up without values is dropped.
//
// Test cases (export): a comma-separated table whose header is the
// parameter names in declared order, one row per test case, quoted per
// RFC 4180. The same format is accepted back by ReadCases.
//
// Spreadsheets: the xlsx variants use github.com/xuri/excelize/v2. A
// parameter workbook is read from its first sheet with the template layout;
// a result workbook has a "Cases" sheet and a "Coverage" sheet.
//
// Errors: every malformed input wraps ErrImportFormat.
package tabular
