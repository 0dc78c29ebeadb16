// Package annotation manages text and shape annotations grouped in layers.
//
// Layers keep their creation order and serialize as a list:
//
//	m := annotation.NewManager()
//	m.Add("signals", annotation.New(ts, 101.2, "breakout"))
//	layers, err := m.AsList()
package annotation
