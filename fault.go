package rct

// FaultBits flattens the device's 128-bit fault field into the positions of
// the set bits. The field is read as four UINT32 OIDs; word 0 holds bits
// 0..31, word 1 bits 32..63 and so on, LSB first within each word.
// Interpreting the positions is up to the consumer.
func FaultBits(words [4]uint32) []uint {
	var bits []uint
	for w, word := range words {
		for i := uint(0); i < 32; i++ {
			if word&(1<<i) != 0 {
				bits = append(bits, uint(w)*32+i)
			}
		}
	}
	return bits
}
