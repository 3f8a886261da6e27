package chunkstream

import "errors"

var (
	// ErrCorrupt reports a chunk header that is malformed or does not match
	// its payload.
	ErrCorrupt = errors.New("chunkstream: corrupt chunk")
	// ErrChunkTooLarge reports a chunk whose declared length exceeds MaxChunkLen.
	ErrChunkTooLarge = errors.New("chunkstream: chunk exceeds maximum length")
)
