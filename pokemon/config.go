package pokemon

// Option configures a Links constructed by New. The defaults, used for any
// limit no Option sets, mirror the limits the original GUI hardcoded: six members on a defensive
// team, twenty-four attack slots, and a ten-thousand-result cap so an
// interactive search never runs away.
type Option func(*config)

type config struct {
	maxOutputSize  int
	maxTeamSize    int
	maxAttackSlots int
}

func defaultConfig() config {
	return config{
		maxOutputSize:  10000,
		maxTeamSize:    6,
		maxAttackSlots: 24,
	}
}

// WithMaxOutputSize caps how many distinct coverages OverlappingTypeCoverage
// collects before it stops searching and ReachedOutputLimit reports true.
func WithMaxOutputSize(n int) Option {
	return func(c *config) { c.maxOutputSize = n }
}

// WithMaxTeamSize caps how many defensive types ExactTypeCoverage /
// OverlappingTypeCoverage may combine when solving DEFENSE.
func WithMaxTeamSize(n int) Option {
	return func(c *config) { c.maxTeamSize = n }
}

// WithMaxAttackSlots caps how many attacking types may combine when solving
// ATTACK.
func WithMaxAttackSlots(n int) Option {
	return func(c *config) { c.maxAttackSlots = n }
}
