// Package bucket groups paired token sequences into length-range buckets so
// batched training pads each batch to a nearby maximum instead of the global
// one.
package bucket

// Index returns the bucket index for a sequence length under the given
// bucket width: ceiling division, so lengths 1..width map to bucket 1,
// width+1..2*width to bucket 2, and length 0 to bucket 0.
func Index(seqLen, width int) int {
	ix := seqLen / width
	if seqLen%width != 0 {
		ix++
	}
	return ix
}

// Bucket holds the X and y sequences assigned to one length range, plus the
// maximum observed length on each side.
type Bucket struct {
	XSeqs   [][]string
	YSeqs   [][]string
	XMaxLen int
	YMaxLen int
}

// Len returns the number of sequence pairs in the bucket.
func (b *Bucket) Len() int {
	return len(b.XSeqs)
}
