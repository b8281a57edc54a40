package middleware

// contextKey prevents collisions with keys set by other packages.
type contextKey string

// loggerCtxKey stores the request-scoped logger in the standard context.
const loggerCtxKey = contextKey("logger")

// authenticatedBy is the gin context key recording how a request was admitted.
const authenticatedBy = "authMethod"
