package protocol

import "encoding/binary"

// CommandBuffer stages the bytes of one inbound write transaction. The
// capacity is fixed at MaxSentBytes; appends beyond it are counted and
// dropped, so an oversized transaction still drains cleanly off the bus
// instead of corrupting adjacent state.
type CommandBuffer struct {
	buf     [MaxSentBytes]byte
	length  int
	dropped int
}

// Append adds one byte, reporting false once the buffer is full.
func (c *CommandBuffer) Append(b byte) bool {
	if c.length >= len(c.buf) {
		c.dropped++
		return false
	}
	c.buf[c.length] = b
	c.length++
	return true
}

// Len returns the number of staged bytes.
func (c *CommandBuffer) Len() int {
	return c.length
}

// Dropped returns how many bytes overflowed since the last Reset.
func (c *CommandBuffer) Dropped() int {
	return c.dropped
}

// Bytes returns a view of the staged bytes. The view is invalidated by
// the next Reset or Append.
func (c *CommandBuffer) Bytes() []byte {
	return c.buf[:c.length]
}

// Reset empties the buffer for the next transaction.
func (c *CommandBuffer) Reset() {
	c.length = 0
	c.dropped = 0
}

// SnapshotBuffer holds one armed encoder read-out plus its read cursor.
// Reads past the end return a 0 sentinel so an over-reading host sees a
// defined value instead of stale memory.
type SnapshotBuffer struct {
	buf    [SnapshotLen]byte
	cursor int
}

// Arm encodes the three axis counters big-endian in wire order C, B, A
// and rewinds the cursor, making the snapshot the active read-out.
func (s *SnapshotBuffer) Arm(c, b, a uint16) {
	binary.BigEndian.PutUint16(s.buf[0:2], c)
	binary.BigEndian.PutUint16(s.buf[2:4], b)
	binary.BigEndian.PutUint16(s.buf[4:6], a)
	s.cursor = 0
}

// Next returns the next armed byte, or 0 once the snapshot is exhausted.
func (s *SnapshotBuffer) Next() byte {
	if s.cursor >= len(s.buf) {
		return 0
	}
	b := s.buf[s.cursor]
	s.cursor++
	return b
}

// Remaining reports how many armed bytes have not been read yet.
func (s *SnapshotBuffer) Remaining() int {
	return len(s.buf) - s.cursor
}

// DecodeSnapshot unpacks a 6-byte read-out into the three axis counters.
// It is the host-side inverse of Arm.
func DecodeSnapshot(raw []byte) (c, b, a uint16) {
	_ = raw[SnapshotLen-1]
	c = binary.BigEndian.Uint16(raw[0:2])
	b = binary.BigEndian.Uint16(raw[2:4])
	a = binary.BigEndian.Uint16(raw[4:6])
	return
}
