package protocol

// Checksum computes the running XOR over data. Checksummed commands carry
// this over every byte from the opcode through the last payload byte; the
// receiver recomputes it and compares against the byte that follows the
// payload.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum ^= b
	}
	return sum
}
