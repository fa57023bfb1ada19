// Package control binds the parameter record to UI widgets.
//
// A [Surface] describes every adjustable parameter as a [Field] and owns
// the handlers widgets invoke (pause, hide, respawn, particle count, view).
// A [Panel] arranges widgets in rows for toolkits that need explicit
// positions. Toolkits implement [Binder]:
//
//	surf := control.NewSurface(scene)
//	panel := control.DefaultLayout(surf)
//	panel.Position(10, 10)
//
// Sliders clamp and snap every write, including text typed into the number
// box beside them. Free number inputs accept any finite value. Unparsable
// text is rejected with [ErrBadInput] and leaves the record unchanged.
package control
