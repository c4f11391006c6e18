package testutil

import "fmt"

// SampleConfig sets every spiral.yaml field to a non-default value, with the
// source directory left relative so it resolves inside the test directory.
const SampleConfig = `source:
  dir: photos
  pattern: "*.jpg"
render:
  format: html
  prime_cell: blank
  cell_padding: 1
  page: true
  title: Holiday
output: gallery.html
log_level: error
`

// ImageNames returns n PNG file names that sort in the order they are numbered.
// Returns a new slice each time to prevent test interference.
func ImageNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%03d.png", i+1)
	}
	return names
}
