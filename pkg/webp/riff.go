package webp

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"golang.org/x/image/riff"
)

const chunkHeaderLen = 8

var riffID = riff.FourCC{'R', 'I', 'F', 'F'}

// Chunks maps a chunk or form ID to the payloads found under it, in order.
// RIFF and LIST chunks are recursed into: their form body (after the 4-byte
// form type) is stored under the form type and its sub-chunks are merged in.
type Chunks map[string][][]byte

// First returns the first payload stored under id.
func (c Chunks) First(id string) ([]byte, bool) {
	p, ok := c[id]
	if !ok || len(p) == 0 {
		return nil, false
	}
	return p[0], true
}

// ParseRIFF walks a sequence of RIFF chunks until the end of data. A
// trailing fragment shorter than a chunk header is ignored; a chunk whose
// length runs past the end of data is an error.
func ParseRIFF(data []byte) (Chunks, error) {
	if uint64(len(data)) > math.MaxUint32-4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedContainer, len(data))
	}

	// read data as the body of an unnamed list
	body := io.MultiReader(bytes.NewReader([]byte("    ")), bytes.NewReader(data))
	_, list, err := riff.NewListReader(uint32(len(data))+4, body)
	if err != nil {
		return nil, malformed(err)
	}

	chunks := make(Chunks)
	if err := walk(list, len(data), chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

func walk(list *riff.Reader, size int, chunks Chunks) error {
	for offset := 0; size-offset >= chunkHeaderLen; {
		id, n, data, err := list.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return malformed(err)
		}

		payload, err := io.ReadAll(data)
		if err != nil {
			return malformed(err)
		}
		if uint32(len(payload)) != n {
			return fmt.Errorf("%w: chunk %q: short data", ErrMalformedContainer, id[:])
		}

		if id == riffID || id == riff.LIST {
			if err := parseList(id, payload, chunks); err != nil {
				return err
			}
		} else {
			chunks[string(id[:])] = append(chunks[string(id[:])], payload)
		}

		// chunks are padded to an even length
		offset += chunkHeaderLen + int(n) + int(n&1)
	}
	return nil
}

func parseList(id riff.FourCC, payload []byte, chunks Chunks) error {
	form, list, err := riff.NewListReader(uint32(len(payload)), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %s chunk without form type", ErrMalformedContainer, id[:])
	}

	body := payload[4:]
	chunks[string(form[:])] = append(chunks[string(form[:])], body)
	return walk(list, len(body), chunks)
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedContainer, err)
}
