// Package kernel provides the shared domain primitives of the warehouse core.
//
// The package includes:
//   - UUID: a value object for entity identifiers
//   - TenantID: the identifier of the tenant that owns an aggregate
//   - DomainEvent and EventMeta: the contract every domain event satisfies
//
// Every aggregate in the model is scoped to exactly one tenant. TenantID is
// therefore passed explicitly into every constructor, command and query; there
// is no ambient tenant context anywhere in the module.
package kernel
