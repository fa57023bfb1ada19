package control

// Binder is a widget toolkit presenting a Surface.
type Binder interface {
	// Bind attaches the toolkit to s. It is called once before the first
	// frame.
	Bind(s *Surface)
	// Sync pulls record values changed elsewhere into the widgets.
	Sync()
}
