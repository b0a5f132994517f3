package cluster

// Layout describes packed clusters for debug output.
type Layout struct {
	Clusters []ClusterLayout `json:"clusters"`
}

// ClusterLayout describes one cluster.
type ClusterLayout struct {
	TimecodeMs uint64        `json:"timecode_ms"`
	DurationMs float64       `json:"duration_ms"`
	Blocks     []BlockLayout `json:"blocks"`
}

// BlockLayout describes one SimpleBlock.
type BlockLayout struct {
	RelativeTimecodeMs int16 `json:"relative_timecode_ms"`
	Size               int   `json:"size"`
	Keyframe           bool  `json:"keyframe"`
}

// Describe returns the layout of clusters.
func Describe(clusters []Cluster) Layout {
	layout := Layout{Clusters: make([]ClusterLayout, 0, len(clusters))}
	for _, c := range clusters {
		cl := ClusterLayout{
			TimecodeMs: c.TimecodeMs,
			DurationMs: c.DurationMs,
			Blocks:     make([]BlockLayout, 0, len(c.Blocks)),
		}
		for _, b := range c.Blocks {
			cl.Blocks = append(cl.Blocks, BlockLayout{
				RelativeTimecodeMs: b.RelativeTimecodeMs,
				Size:               len(b.Frame),
				Keyframe:           b.Flags.Keyframe(),
			})
		}
		layout.Clusters = append(layout.Clusters, cl)
	}
	return layout
}
