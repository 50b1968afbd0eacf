// Package fourier implements frequency-domain filters for
// chunk-partitioned n-dimensional arrays.
//
// The filters operate on data that already lives in the Fourier domain,
// as produced by a full complex transform: [Gaussian] attenuates high
// frequencies (a blur once inverse transformed) and [Shift] multiplies
// by a linear-phase factor (a translation once inverse transformed).
// Both compose a lazy per-chunk computation via [ndarray] and return
// immediately; no data is touched until the caller materializes the
// result. The frequency grid both filters derive from is built to match
// the input's chunk partition exactly, so applying a filter never
// re-chunks the data.
//
// Axis-restricted real-transform input (the n >= 0 mode of the
// corresponding scipy.ndimage filters) is not supported and is rejected
// up front.
package fourier
