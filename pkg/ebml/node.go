// Package ebml encodes labeled element trees into EBML binary.
package ebml

// Kind identifies the value carried by a Node.
type Kind int

const (
	// KindUint is an unsigned integer leaf.
	KindUint Kind = iota
	// KindFloat is a 64-bit IEEE-754 leaf.
	KindFloat
	// KindString is a UTF-8 string leaf.
	KindString
	// KindBytes is a binary leaf.
	KindBytes
	// KindMaster is a branch holding child elements.
	KindMaster
	// KindRaw is pre-encoded EBML spliced into the parent as-is.
	KindRaw
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindMaster:
		return "master"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Node is one element of an EBML tree. Build nodes with the constructors
// below; the zero value is not meaningful.
type Node struct {
	ID   uint32
	Kind Kind

	uintValue  uint64
	width      int // fixed byte width for KindUint, 0 = minimal
	floatValue float64
	strValue   string
	rawValue   []byte
	children   []Node
}

// Uint returns an unsigned integer element encoded in the fewest bytes.
func Uint(id uint32, v uint64) Node {
	return Node{ID: id, Kind: KindUint, uintValue: v}
}

// FixedUint returns an unsigned integer element zero-padded to width bytes.
func FixedUint(id uint32, v uint64, width int) Node {
	return Node{ID: id, Kind: KindUint, uintValue: v, width: width}
}

// Float returns a big-endian float64 element.
func Float(id uint32, v float64) Node {
	return Node{ID: id, Kind: KindFloat, floatValue: v}
}

// String returns a UTF-8 string element without terminator.
func String(id uint32, s string) Node {
	return Node{ID: id, Kind: KindString, strValue: s}
}

// Bytes returns a binary element.
func Bytes(id uint32, b []byte) Node {
	return Node{ID: id, Kind: KindBytes, rawValue: b}
}

// Master returns a branch element holding children in order.
func Master(id uint32, children ...Node) Node {
	return Node{ID: id, Kind: KindMaster, children: children}
}

// Raw returns a node whose bytes are already complete EBML (header included).
// It has no ID of its own.
func Raw(encoded []byte) Node {
	return Node{Kind: KindRaw, rawValue: encoded}
}

// Children returns the child nodes of a master element.
func (n Node) Children() []Node {
	return n.children
}

// Append adds children to a master element and returns the result.
func (n Node) Append(children ...Node) Node {
	n.children = append(n.children, children...)
	return n
}
