package options

// Resolve computes the effective options for one operation.
// Layers are applied lowest to highest precedence: defaults, the screen's own
// accumulated options, then per-call overrides. It has no side effects.
func Resolve(defaults, screen, override Options) Options {
	return Layered(defaults, screen, override)
}

// Layered merges any number of layers, lowest precedence first.
func Layered(layers ...Options) Options {
	var resolved Options
	for _, layer := range layers {
		resolved = resolved.MergeWith(layer)
	}
	return resolved
}
