package ebml

// Element IDs used by the WebM muxer. IDs carry their own vint marker bits
// and are written verbatim in the minimum number of bytes.
const (
	IDEBML               uint32 = 0x1A45DFA3
	IDEBMLVersion        uint32 = 0x4286
	IDEBMLReadVersion    uint32 = 0x42F7
	IDEBMLMaxIDLength    uint32 = 0x42F2
	IDEBMLMaxSizeLength  uint32 = 0x42F3
	IDDocType            uint32 = 0x4282
	IDDocTypeVersion     uint32 = 0x4287
	IDDocTypeReadVersion uint32 = 0x4285

	IDSegment       uint32 = 0x18538067
	IDInfo          uint32 = 0x1549A966
	IDTimecodeScale uint32 = 0x2AD7B1
	IDMuxingApp     uint32 = 0x4D80
	IDWritingApp    uint32 = 0x5741
	IDDuration      uint32 = 0x4489

	IDTracks      uint32 = 0x1654AE6B
	IDTrackEntry  uint32 = 0xAE
	IDTrackNumber uint32 = 0xD7
	IDTrackUID    uint32 = 0x73C5
	IDFlagLacing  uint32 = 0x9C
	IDLanguage    uint32 = 0x22B59C
	IDCodecID     uint32 = 0x86
	IDCodecName   uint32 = 0x258688
	IDTrackType   uint32 = 0x83
	IDVideo       uint32 = 0xE0
	IDPixelWidth  uint32 = 0xB0
	IDPixelHeight uint32 = 0xBA

	IDCluster     uint32 = 0x1F43B675
	IDTimecode    uint32 = 0xE7
	IDSimpleBlock uint32 = 0xA3
)
