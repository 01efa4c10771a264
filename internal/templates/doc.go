// Package templates holds the bundled component templates and the table that
// drives their rendering: which asset is rendered in which order, under which
// output name, whether it is formatted, and which placeholder tokens are
// replaced in it.
package templates
