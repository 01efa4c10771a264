// Package generator creates a component directory from the bundled
// templates. For each template asset, in a fixed order, it reads the
// template, replaces the placeholder tokens, formats the result and writes
// it, stopping at the first failure. Files written before a failure are kept.
package generator
