// Package matching solves perfect-matching and maximum-weight-matching
// problems over an undirected graph with Dancing Links: every option row
// pairs exactly two people, so hiding a row splices both endpoints' columns
// out in one call, unlike pokemon or disaster where a row's width varies.
//
// Ported from PartnerLinks.cpp/h (filtered from the retrieval pack; its
// Tests/PartnerLinksTests.cpp survived and supplies the array fixtures this
// package's construction is ported against) and PerfectLinks.cpp/h for the
// unweighted personLink/personName naming convention.
package matching
