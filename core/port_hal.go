package core

// PortReader samples the encoder input port. One call returns the level
// of every encoder pin from a single register read, so the three axes'
// 2-bit states are coherent with each other. Target code supplies the
// real implementation; tests supply a scripted one.
type PortReader interface {
	ReadSnapshot() uint8
}
