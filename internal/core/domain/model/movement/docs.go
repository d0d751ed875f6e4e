// Package movement models the relocation of stock between two locations.
//
// A StockMovement is created Pending and transitions exactly once, to
// Completed or Cancelled. Both are terminal.
//
//	Pending ──complete──> Completed
//	   │
//	   └────cancel─────> Cancelled
//
// The aggregate does not touch location quantities. The application layer
// that completes a movement is responsible for moving stock between the source
// and destination locations in the same transaction.
package movement
