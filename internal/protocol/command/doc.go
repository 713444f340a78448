// Package command implements the command-suggestion graph codec.
//
// A graph is a flat arena of nodes; children and redirects address sibling
// nodes by arena index, never by pointer. Each node packs its variant tag and
// conditional-field presence into a single flags byte, so one wrong bit
// corrupts every byte that follows; decode therefore fails hard on the first
// structural violation.
package command
