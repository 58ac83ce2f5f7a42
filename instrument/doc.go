// Package instrument measures a solver run from the outside: wall-clock time
// and process memory sampled right before the first permutation and right
// after the last one. Recorder implements tsp.Observer, so it is injected
// through tsp.Options and never touches the enumeration itself.
//
// Memory is sampled from runtime.MemStats (HeapAlloc by default) and reported
// in KB; the delta can be negative when a collection ran during the search.
package instrument
