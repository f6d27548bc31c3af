// Package confocal composes paired two-channel microscopy images into labeled
// montage figure rows.
//
// The pipeline locates the brightest shared region of interest across both
// channels with summed-area tables, crops and resamples each channel to a
// fixed panel size, normalizes intensity toward a target peak with bounded
// random jitter, merges the channels into a pseudo-colored composite
// (channel 1 green, channel 2 red), and lays out the three panels with
// optional row and column labels. Rows are independent; callers may build
// them concurrently.
package confocal
