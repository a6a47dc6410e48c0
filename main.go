package circular_buffer_go

// Smallest non-zero capacity the buffer will allocate. Keeps a buffer that
// started at 0 capacity from reallocating byte by byte.
const minimumNonEmptyCapacity = 8

// ReadCursor is an opaque snapshot of the read cursor, produced by
// GetReadCursor and accepted by SetReadCursor.
type ReadCursor struct {
	position int
	length   int
}

// CircularBuffer is a growable FIFO byte queue with a hard capacity ceiling.
//
// The valid data occupies the circular range [position, position+length)
// modulo the backing array size and may wrap past the end of the array at
// most once. An empty buffer always has position 0.
type CircularBuffer struct {
	buffer          []byte
	position        int
	length          int
	maxCapacity     int
	initialCapacity int
}

// NewCircularBuffer creates a buffer with the given initial capacity and a
// hard ceiling of maxCapacity. The initial capacity is clamped to
// maxCapacity. All allocated bytes are zeroed.
func NewCircularBuffer(capacity int, maxCapacity int) *CircularBuffer {
	if capacity > maxCapacity {
		capacity = maxCapacity
	}

	return &CircularBuffer{
		buffer:          make([]byte, capacity),
		maxCapacity:     maxCapacity,
		initialCapacity: capacity,
	}
}

// IsEmpty reports whether there is anything to read in the buffer.
func (buffer *CircularBuffer) IsEmpty() bool {
	return buffer.length == 0
}

// GetCapacity returns the current size of the backing array.
func (buffer *CircularBuffer) GetCapacity() int {
	return len(buffer.buffer)
}

// GetMaxCapacity returns the hard ceiling the backing array may never exceed.
func (buffer *CircularBuffer) GetMaxCapacity() int {
	return buffer.maxCapacity
}

// GetLength returns the number of unread bytes currently stored.
func (buffer *CircularBuffer) GetLength() int {
	return buffer.length
}

// GetRemainingSpace returns the number of bytes that can still be queued
// before the hard ceiling. This does not signify how much can be written
// right now without a reallocation.
func (buffer *CircularBuffer) GetRemainingSpace() int {
	return buffer.maxCapacity - buffer.length
}

// Bytes writable into the current allocation without growing.
func (buffer *CircularBuffer) getFreeSpace() int {
	return len(buffer.buffer) - buffer.length
}

// resize relocates the data into a new backing array of exactly newCapacity,
// preserving logical byte order. The data is de-wrapped: after a resize it
// starts at index 0 and position is reset. Resizing to the current capacity
// is a no-op. Resizing below the current length panics.
func (buffer *CircularBuffer) resize(newCapacity int) {
	if newCapacity == len(buffer.buffer) {
		return
	}

	if newCapacity < buffer.length {
		panic("circular buffer: tried to resize below the current length")
	}

	newBuffer := make([]byte, newCapacity)

	if buffer.length > 0 {
		if buffer.position+buffer.length <= len(buffer.buffer) {
			copy(newBuffer, buffer.buffer[buffer.position:buffer.position+buffer.length])
		} else {
			n := copy(newBuffer, buffer.buffer[buffer.position:])
			copy(newBuffer[n:], buffer.buffer[:buffer.length-n])
		}
	}

	buffer.buffer = newBuffer
	buffer.position = 0
}

// grow enlarges the backing array, doubling the current capacity with a
// floor of max(minimumNonEmptyCapacity, initialCapacity) and a ceiling of
// maxCapacity. It returns false without touching the buffer when no hard
// capacity remains. When the allocation already sits at maxCapacity but
// unread bytes do not, the resize is a same-capacity no-op and grow still
// returns true.
func (buffer *CircularBuffer) grow() bool {
	if buffer.GetRemainingSpace() == 0 {
		return false
	}

	newCapacity := min(
		buffer.maxCapacity,
		max(len(buffer.buffer)*2, max(minimumNonEmptyCapacity, buffer.initialCapacity)),
	)

	buffer.resize(newCapacity)

	return true
}

// ReadableSpan returns the first contiguous run of unread bytes starting at
// the read cursor. When the data wraps, only the portion up to the end of
// the array is returned; call again after advancing to see the remainder.
// Returns an empty slice when the buffer is empty.
func (buffer *CircularBuffer) ReadableSpan() []byte {
	end := min(buffer.position+buffer.length, len(buffer.buffer))

	return buffer.buffer[buffer.position:end]
}

// AdvanceRead commits that count bytes were consumed from the front of the
// buffer. Consuming the last unread byte resets the cursor to 0, restoring
// the canonical empty state. Advancing past what is available panics.
func (buffer *CircularBuffer) AdvanceRead(count int) {
	if count > buffer.length {
		panic("circular buffer: tried to advance the read cursor past what is available to read")
	}

	if count == 0 {
		return
	}

	buffer.position = (buffer.position + count) % len(buffer.buffer)
	buffer.length -= count

	if buffer.length == 0 {
		buffer.position = 0
	}
}

// WritableSpan returns the first contiguous run of free space starting right
// after the unread data. When the current allocation is full it grows the
// backing array first; when the hard ceiling leaves no room to grow it
// returns an empty slice.
func (buffer *CircularBuffer) WritableSpan() []byte {
	if buffer.getFreeSpace() == 0 {
		if !buffer.grow() {
			return buffer.buffer[:0]
		}
	}

	writePosition := (buffer.position + buffer.length) % len(buffer.buffer)
	end := min(writePosition+buffer.getFreeSpace(), len(buffer.buffer))

	return buffer.buffer[writePosition:end]
}

// AdvanceWrite commits that count bytes were written into the span returned
// by the last WritableSpan call. Advancing past the hard remaining capacity,
// or past the contiguous free space that was granted, panics.
func (buffer *CircularBuffer) AdvanceWrite(count int) {
	if count > buffer.GetRemainingSpace() {
		panic("circular buffer: tried to advance the write cursor past the maximum buffer capacity")
	}

	if count > buffer.getFreeSpace() {
		panic("circular buffer: tried to advance the write cursor past what was written")
	}

	buffer.length += count
}

// GetReadCursor returns a snapshot of the read cursor for peek-then-rollback
// reading.
func (buffer *CircularBuffer) GetReadCursor() ReadCursor {
	return ReadCursor{
		position: buffer.position,
		length:   buffer.length,
	}
}

// SetReadCursor restores a snapshot previously returned by GetReadCursor.
// The snapshot is only valid as long as no call in between grew, shrank or
// wrote to the buffer.
func (buffer *CircularBuffer) SetReadCursor(cursor ReadCursor) {
	buffer.position = cursor.position
	buffer.length = cursor.length
}

// ReadExact consumes exactly length bytes and returns them as one owned
// slice, stitching together the two contiguous runs on either side of a
// wraparound. Requesting more than GetLength() panics.
func (buffer *CircularBuffer) ReadExact(length int) []byte {
	if length > buffer.length {
		panic("circular buffer: tried to read past what is available to read")
	}

	output := make([]byte, 0, length)

	firstChunkSize := min(length, len(buffer.ReadableSpan()))
	output = append(output, buffer.ReadableSpan()[:firstChunkSize]...)
	buffer.AdvanceRead(firstChunkSize)

	remaining := length - firstChunkSize
	output = append(output, buffer.ReadableSpan()[:remaining]...)
	buffer.AdvanceRead(remaining)

	return output
}

// ApplySoftLimit opportunistically shrinks the backing array toward limit,
// intended to be called periodically by the owner after usage drops. An
// empty buffer larger than the limit is deallocated entirely. A non-empty
// buffer shrinks to exactly the limit only when the unread bytes occupy at
// most half of it and the current allocation is at least twice it; the
// hysteresis avoids oscillating grow/shrink cycles under bursty load near
// the threshold.
func (buffer *CircularBuffer) ApplySoftLimit(limit int) {
	limit = min(limit, buffer.maxCapacity)

	if buffer.length == 0 && len(buffer.buffer) > limit {
		buffer.buffer = nil
		buffer.position = 0
	} else if buffer.length <= limit/2 && len(buffer.buffer) >= 2*limit {
		buffer.resize(limit)
	}
}

// Read copies unread bytes into p and advances the read cursor. It never
// blocks and the returned error is always nil; n is 0 when the buffer is
// empty. At most one contiguous run is copied per call.
func (buffer *CircularBuffer) Read(p []byte) (n int, err error) {
	n = copy(p, buffer.ReadableSpan())
	buffer.AdvanceRead(n)

	return n, nil
}

// Write copies bytes from p into the buffer, growing the backing array at
// most once, and advances the write cursor. It never blocks and the returned
// error is always nil; n is 0 when the hard capacity is exhausted, which
// callers should treat as backpressure. At most one contiguous run is copied
// per call.
func (buffer *CircularBuffer) Write(p []byte) (n int, err error) {
	n = copy(buffer.WritableSpan(), p)
	buffer.AdvanceWrite(n)

	return n, nil
}
