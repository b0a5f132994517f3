package muxer

import (
	"github.com/user/webmrec/pkg/cluster"
	"github.com/user/webmrec/pkg/ebml"
)

const (
	// AppName is written as MuxingApp and WritingApp.
	AppName = "webmrec"

	// TimecodeScale makes one timecode tick a millisecond.
	TimecodeScale = 1000000

	docType            = "webm"
	docTypeVersion     = 2
	docTypeReadVersion = 2
	codecID            = "V_VP8"
	codecName          = "VP8"
	trackTypeVideo     = 1
)

func headerNode() ebml.Node {
	return ebml.Master(ebml.IDEBML,
		ebml.Uint(ebml.IDEBMLVersion, 1),
		ebml.Uint(ebml.IDEBMLReadVersion, 1),
		ebml.Uint(ebml.IDEBMLMaxIDLength, 4),
		ebml.Uint(ebml.IDEBMLMaxSizeLength, 8),
		ebml.String(ebml.IDDocType, docType),
		ebml.Uint(ebml.IDDocTypeVersion, docTypeVersion),
		ebml.Uint(ebml.IDDocTypeReadVersion, docTypeReadVersion),
	)
}

func infoNode(durationMs float64) ebml.Node {
	return ebml.Master(ebml.IDInfo,
		ebml.Uint(ebml.IDTimecodeScale, TimecodeScale),
		ebml.String(ebml.IDMuxingApp, AppName),
		ebml.String(ebml.IDWritingApp, AppName),
		ebml.Float(ebml.IDDuration, durationMs),
	)
}

func tracksNode(width, height uint16) ebml.Node {
	return ebml.Master(ebml.IDTracks,
		ebml.Master(ebml.IDTrackEntry,
			ebml.Uint(ebml.IDTrackNumber, cluster.TrackNumber),
			ebml.Uint(ebml.IDTrackUID, 1),
			ebml.Uint(ebml.IDFlagLacing, 0),
			ebml.String(ebml.IDLanguage, "und"),
			ebml.String(ebml.IDCodecID, codecID),
			ebml.String(ebml.IDCodecName, codecName),
			ebml.Uint(ebml.IDTrackType, trackTypeVideo),
			ebml.Master(ebml.IDVideo,
				ebml.FixedUint(ebml.IDPixelWidth, uint64(width), 2),
				ebml.FixedUint(ebml.IDPixelHeight, uint64(height), 2),
			),
		),
	)
}
