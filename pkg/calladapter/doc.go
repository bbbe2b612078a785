// Package calladapter decides, when an endpoint is declared, how its
// calls deliver their outcome.
//
// An endpoint declares its return type as a Shape. A Factory inspects
// a Declaration and either claims it, returning an *Adapter, declines
// it, returning (nil, nil), or rejects it with a *ConfigError. A
// Registry asks its factories in order and uses the first claim.
//
// ResultFactory claims the declarations whose results are a
// netresult.Result:
//
// - a call of Result[T] (or a Result[T] annotated with Suspend) gets
// an Async adapter;
//
// - a bare Result[T] gets a Sync adapter;
//
// - a Result without a type argument, or a Result of a Result, is a
// configuration error;
//
// - anything else is declined.
package calladapter
