package corpuscmd

// FeatureGates exposes runtime feature toggles required by corpus command handlers.
// Callers should supply closures that read from corpus.Config.Features so handlers
// stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	CatalogEnabled    func() bool
	ValidationEnabled func() bool
}

func (g FeatureGates) catalogEnabled() bool {
	if g.CatalogEnabled == nil {
		return true
	}
	return g.CatalogEnabled()
}

func (g FeatureGates) validationEnabled() bool {
	if g.ValidationEnabled == nil {
		return true
	}
	return g.ValidationEnabled()
}
