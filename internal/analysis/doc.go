// Package analysis computes statistics over recorded run traces.
//
//   - [Summarize]: speed and position statistics for a whole trace
//   - [DwellFractions]: share of time spent nearest each light element
//   - [DominantFrequency]: strongest oscillation in a sampled series
package analysis
