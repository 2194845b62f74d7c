package bucket

// PadX returns the bucket's X sequences padded with the pad token to the
// bucket's recorded X max length. Sequences longer than the recorded max
// (possible after a downward merge overwrote the tracker) are truncated.
// The bucket itself is never modified.
func (b *Bucket) PadX(pad string) [][]string {
	return padSeqs(b.XSeqs, b.XMaxLen, pad)
}

// PadY returns the bucket's y sequences padded with the pad token to the
// bucket's recorded y max length.
func (b *Bucket) PadY(pad string) [][]string {
	return padSeqs(b.YSeqs, b.YMaxLen, pad)
}

func padSeqs(seqs [][]string, maxLen int, pad string) [][]string {
	out := make([][]string, len(seqs))
	for i, seq := range seqs {
		padded := make([]string, maxLen)
		n := copy(padded, seq)
		for j := n; j < maxLen; j++ {
			padded[j] = pad
		}
		out[i] = padded
	}
	return out
}
