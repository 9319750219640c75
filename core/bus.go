package core

import "triangula/protocol"

// BusStats counts silently dropped traffic. The wire contract makes
// these failures invisible to the host, so the counters exist only for
// diagnostics and tests.
type BusStats struct {
	OverflowBytes uint32 // write bytes discarded beyond buffer capacity
	BadChecksums  uint32 // recognized commands dropped on checksum mismatch
}

// BusTarget implements the slave side of the bus. OnReceive and
// OnRequest run in the bus controller's interrupt context and never
// block; TakeCommand runs on the main loop. The new-data flag is the
// handoff point between the two sides.
type BusTarget struct {
	cmd      protocol.CommandBuffer
	newData  bool
	snapshot protocol.SnapshotBuffer
	stats    BusStats
}

// OnReceive is the write-transaction callback. Bytes beyond capacity
// are consumed and dropped so the transaction completes cleanly. The
// payload is fully staged before the new-data flag is raised, so the
// main loop can never observe the flag ahead of the bytes.
func (t *BusTarget) OnReceive(data []byte) {
	t.cmd.Reset()
	for _, b := range data {
		if !t.cmd.Append(b) {
			t.stats.OverflowBytes++
		}
	}
	t.newData = true
}

// OnRequest is the read-transaction callback: it yields the next byte
// of the armed snapshot, or the 0 sentinel once it is exhausted.
func (t *BusTarget) OnRequest() byte {
	return t.snapshot.Next()
}

// TakeCommand hands the most recent command to the main loop, copying
// it into dst. The flag is cleared before the copy, so a write landing
// mid-call surfaces as fresh data on the next poll instead of being
// silently merged into this one.
func (t *BusTarget) TakeCommand(dst []byte) (int, bool) {
	state := disableInterrupts()
	if !t.newData {
		restoreInterrupts(state)
		return 0, false
	}
	t.newData = false
	n := copy(dst, t.cmd.Bytes())
	restoreInterrupts(state)
	return n, true
}

// ArmSnapshot loads a fresh encoder read-out (wire order C, B, A) and
// rewinds the read cursor. There is no interlock against a host that
// re-arms while still reading the previous snapshot; sequencing that is
// the host protocol's obligation.
func (t *BusTarget) ArmSnapshot(c, b, a uint16) {
	t.snapshot.Arm(c, b, a)
}

// Stats returns a copy of the drop counters.
func (t *BusTarget) Stats() BusStats {
	state := disableInterrupts()
	s := t.stats
	restoreInterrupts(state)
	return s
}

func (t *BusTarget) noteBadChecksum() {
	t.stats.BadChecksums++
}
