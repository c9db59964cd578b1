// Package repository implements the data access layer for the Roomstack API.
//
// Each repository struct handles CRUD operations for a specific entity.
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts the database handle
//   - Methods implement specific data operations (Insert, GetByID, GetAll, ...)
//   - Statement text uses @-style named parameters bound at execution time;
//     values are never interpolated into SQL
//   - Results are scanned into model structs with a fixed column order,
//     so schema drift breaks at compile/scan time rather than by name lookup
//
// # Resource Discipline
//
// Every method acquires one pooled connection, performs exactly one round
// trip, and releases the connection via defer on all exit paths. No state is
// carried between calls; the database is the sole source of truth.
//
// # Absence vs. Failure
//
// Reads return (nil, nil) when no row matches — absence is a normal result,
// not an error. Mutations on ids that match no row execute successfully with
// zero rows affected. Driver failures are translated by the database package
// and propagated unhandled:
//
//	room, err := repo.GetByID(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if room == nil {
//	    // no such row
//	}
package repository
