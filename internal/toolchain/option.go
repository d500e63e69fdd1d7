package toolchain

// Option identifies a selectable toolchain: a display label plus the
// executable it points at. Immutable value; compared by both fields.
type Option struct {
	Label   string
	BinPath string
}

// Equal reports whether two options denote the same selection.
func (o Option) Equal(other Option) bool {
	return o.Label == other.Label && o.BinPath == other.BinPath
}
