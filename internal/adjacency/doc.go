// Package adjacency symmetrizes one-directional road-network maps shared by
// the disaster and matching builders, ported from DisasterUtilities.cpp's
// makeSymmetric/makeMap (identical functions there under two names).
package adjacency
