package catalog

// Catalog is the immutable, process-wide set of controls. Decomposition runs
// once here rather than per request; the catalog never changes after Load.
type Catalog struct {
	controls []Control
}

// Load builds the catalog from the static control definitions, decomposing
// each control's outline into cached sub-requirements. Deterministic: two
// loads yield identical ordered output.
func Load() *Catalog {
	controls := make([]Control, len(baseControls))
	copy(controls, baseControls)
	for i := range controls {
		controls[i].SubRequirements = Decompose(controls[i])
	}
	return &Catalog{controls: controls}
}

// Controls returns the controls in stable catalog order.
func (c *Catalog) Controls() []Control {
	return c.controls
}

// Len reports the number of controls in the catalog.
func (c *Catalog) Len() int {
	return len(c.controls)
}
