// Package disaster finds minimum (or bounded-size) sets of supply cities
// that leave every city in a road network within one hop of a supply,
// using Dancing Links over options shaped differently from pokemon or
// matching: each option ("supply here") covers several columns at once
// (the city itself and all its neighbors), and a column may be covered by
// more than one chosen option, so the classic exact-cover splice is applied
// per-column rather than per-option-row.
//
// Ported from DisasterLinks.cpp/h (filtered from the retrieval pack; its
// Tests/DisasterLinksTests.cpp array fixtures and Src/DisasterUtilities.cpp
// ground the construction and symmetry helpers this package uses).
package disaster
