// Package errors provides coded errors for rpg-loot.
//
// Errors carry a Code, a user facing message, an optional cause and
// metadata:
//
//	err := errors.NotFoundf("preview session %s not found", id)
//	err := errors.InvalidFormula("2d", "missing die size")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load preview session")
//	}
//
// The loot specific codes (SOURCE_UNAVAILABLE, INVALID_FORMULA,
// NO_QUALIFYING_ITEMS, NO_SOURCES_CONFIGURED) are Recoverable: the engines
// turn them into warnings on a generation result and keep going.
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Store == nil {
//	    vb.RequiredField("Store")
//	}
//	return vb.Build()
//
// Handlers convert to gRPC status with ToGRPCError.
package errors
