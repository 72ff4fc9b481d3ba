// Package assign builds gift exchange assignments.
//
// An assignment set is a permutation over the active participants of one
// exchange that forms exactly one cycle: everyone gives one gift, everyone
// receives one gift, nobody draws themselves and no sub-group exchanges only
// among itself. The package is pure computation; persistence and locking
// live in the service layer.
package assign
