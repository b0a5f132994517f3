package ports

// DebugSink receives intermediate results of a compile for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveFrame saves the VP8 bitstream of one decoded frame.
	SaveFrame(index int, bitstream []byte) error

	// SaveIVF saves all frames of a compile unit as an IVF stream.
	SaveIVF(data []byte) error

	// SaveClusterJSON saves the cluster layout as JSON.
	SaveClusterJSON(data []byte) error
}
