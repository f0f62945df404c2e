// Package matrix provides the small amount of linear algebra the instrument
// model needs: a bounds-checked row-major Dense matrix and Resolution, a
// banded (DIA) matrix describing how a spectrograph spreads each pixel over
// its neighbours.
//
// 🚀 What is a resolution matrix?
//
//	Observed pixel i receives flux from true pixels i-k..i+k. Storing the full
//	n×n matrix wastes memory when k is 5, so Resolution keeps only the
//	2k+1 diagonals, ordered by descending offset (k, k-1, ..., -k):
//
//	  A[i, i+off_d] = Data[d][i+off_d]
//
//	Entries are indexed by column: Data[d][j] holds A[j-off_d, j].
//
// ✨ Key features:
//   - FromDiagonals, FromDense and FromSigmas constructors
//   - Dot applies the matrix in O(n·ndiag) without materialising it
//   - ToDense for inspection and tests
//
// Safety: public accessors return ErrOutOfRange instead of panicking, and
// every sentinel can be matched with errors.Is.
package matrix
