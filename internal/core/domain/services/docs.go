// Package services holds the allocation decisions of the warehouse core that
// span more than one aggregate.
//
// The package includes:
//   - FEFOAssigner: places a batch of stock items into locations, soonest
//     expiring first and nearest the picking zone first
//   - ReturnRouter: picks a location for one returned line based on the
//     product's condition
//
// Both services are pure: they read the locations they are given, never
// mutate them and perform no I/O. Persisting the outcome (for example
// reserving the chosen locations) is left to the application layer.
package services
