package circular_buffer_go

import "io"

// CircularBufferInterface defines the public API for the circular buffer.
//
// The buffer is a FIFO byte queue backed by one owned contiguous array that
// wraps at its end. The backing array grows on demand (doubling, with a floor)
// up to a hard maximum capacity, and can be shrunk back down with
// ApplySoftLimit once usage drops.
//
// Notes on semantics:
//   - The buffer is single-owner and carries no internal synchronization. It
//     must never be used from more than one goroutine at a time.
//   - ReadableSpan and WritableSpan return views into the backing array. Any
//     mutating call (advances, Read, Write, ReadExact, ApplySoftLimit) may
//     reallocate or move data, so a span must not be retained across one.
//   - Read and Write never block and never return an error. Read returns 0
//     when the buffer is empty. Write returns 0 when the hard capacity is
//     exhausted; callers should treat that as backpressure, not corruption.
//     Both copy at most one contiguous run per call, so callers loop for full
//     transfers.
//   - Advancing a cursor past what is available, or past the span that was
//     granted, is a contract violation and panics. These are caller bugs, not
//     runtime conditions to recover from.
//   - GetReadCursor/SetReadCursor support speculative reads: snapshot the
//     cursor, consume some bytes, and roll back if they turn out to be
//     insufficient.
type CircularBufferInterface interface {
	// Reports whether there is anything to read in the buffer.
	IsEmpty() bool

	// Returns the current size of the backing array.
	GetCapacity() int

	// Returns the hard ceiling the backing array may never exceed.
	GetMaxCapacity() int

	// Returns the number of unread bytes currently stored.
	GetLength() int

	// Returns the number of bytes that can still be queued before the hard
	// ceiling, independent of the current allocation.
	GetRemainingSpace() int

	// Returns the first contiguous run of unread bytes.
	ReadableSpan() []byte

	// Commits that count bytes were consumed from the front.
	AdvanceRead(count int)

	// Returns the first contiguous run of free space, growing the backing
	// array at most once if none remains in the current allocation.
	WritableSpan() []byte

	// Commits that count bytes were written into the last writable span.
	AdvanceWrite(count int)

	// Returns a snapshot of the read cursor.
	GetReadCursor() ReadCursor

	// Restores a snapshot previously returned by GetReadCursor.
	SetReadCursor(cursor ReadCursor)

	// Consumes exactly length bytes and returns them as one owned slice.
	ReadExact(length int) []byte

	// Opportunistically shrinks the backing array toward limit.
	ApplySoftLimit(limit int)

	// Copies unread bytes out and advances the read cursor.
	Read(p []byte) (n int, err error)

	// Copies bytes in and advances the write cursor.
	Write(p []byte) (n int, err error)
}

var _ CircularBufferInterface = &CircularBuffer{}
var _ io.Reader = &CircularBuffer{}
var _ io.Writer = &CircularBuffer{}
