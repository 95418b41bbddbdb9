package disaster

import "errors"

// ErrEmptyNetwork is returned when the city adjacency table has no cities.
var ErrEmptyNetwork = errors.New("disaster: network has no cities")
