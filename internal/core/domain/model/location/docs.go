// Package location models a physical storage location in a warehouse.
//
// A Location is an aggregate root owned by exactly one tenant. It carries an
// optional physical address (Coordinates), a tenant-unique Barcode, a Capacity
// expressed in decimal units and a Status driven by an explicit transition
// table:
//
//	            reserve              block
//	Available ──────────> Reserved ────────┐
//	   │  ▲                  │             ▼
//	   │  └── release ───────┘          Blocked ──unblock──> Available | Occupied
//	   │                                   ▲
//	   └── add stock ──> Occupied ── block ┘
//
// Operations that raise a domain event return it; nothing is buffered on the
// aggregate. Every mutating operation takes the time it happens at, so the
// aggregate never reads a clock.
package location
