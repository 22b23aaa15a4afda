// Package assetexpl provides the content model behind an educational ETF
// explorer: a bilingual, read-only catalog of index profiles and the
// derivation of chart-ready series from their composition breakdowns.
//
// The core functionalities include:
//   - Content Catalog: index profiles (description, risk/return summary,
//     geographic and sector composition, usage strategy) and UI labels,
//     keyed by a closed set of languages. The catalog is decoded and
//     validated once, then never mutated.
//   - Composition Normalizer: checks that a composition has unique, non
//     empty categories and finite, non-negative percentages.
//   - Chart Series Builder: turns a composition into a proportional series
//     (authoring order, for pie charts) or a ranked series (ascending, for bar
//     charts) with one-decimal labels.
//   - Selection Resolver: maps the selected language and index key to the
//     profile and labels to display.
//
// This package serves as the foundational logic for the `assetexpl`
// command-line tool. The presentation of a resolved view lives in the
// renderer package.
package assetexpl
