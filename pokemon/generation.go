package pokemon

// FilterByGeneration narrows types to the ones available in the given
// generation. Generation 1 predates Dark, Steel, and Fairy; generations 2-5
// predate Fairy; generation 6 onward carries every type this module knows
// about, since no later generation introduced a new elemental type in the
// source game data this was distilled from. Callers outside generation
// 1-5 (including out-of-range values) get types back unfiltered — the
// header-parsing rules that route a raw file's generation line to one of
// these buckets are an external collaborator's job, not this package's.
func FilterByGeneration(types []string, gen int) []string {
	excluded := map[string]struct{}{}
	switch {
	case gen == 1:
		excluded["Dark"] = struct{}{}
		excluded["Steel"] = struct{}{}
		excluded["Fairy"] = struct{}{}
	case gen >= 2 && gen <= 5:
		excluded["Fairy"] = struct{}{}
	}

	out := make([]string, 0, len(types))
	for _, t := range types {
		if _, skip := excluded[t]; skip {
			continue
		}
		out = append(out, t)
	}
	return out
}
