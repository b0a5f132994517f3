package webmprobe

import "github.com/at-wat/ebml-go"

// Unmarshal targets. Field names are ebml-go element names.

type container struct {
	Header  header `ebml:"EBML"`
	Segment segment
}

type header struct {
	EBMLVersion            uint64
	EBMLReadVersion        uint64
	EBMLMaxIDLength        uint64
	EBMLMaxSizeLength      uint64
	EBMLDocType            string
	EBMLDocTypeVersion     uint64
	EBMLDocTypeReadVersion uint64
}

type segment struct {
	Info    info
	Tracks  tracks
	Cluster []cluster
}

type info struct {
	TimecodeScale uint64
	MuxingApp     string
	WritingApp    string
	Duration      float64
}

type tracks struct {
	TrackEntry []trackEntry
}

type trackEntry struct {
	TrackNumber uint64
	TrackUID    uint64
	FlagLacing  uint64
	Language    string
	CodecID     string
	CodecName   string
	TrackType   uint64
	Video       video
}

type video struct {
	PixelWidth  uint64
	PixelHeight uint64
}

type cluster struct {
	Timecode    uint64
	SimpleBlock []ebml.Block
}
