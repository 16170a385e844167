// Package locroute holds the locale-aware route table: logical route
// definitions, per-language locale entries, the path builder that derives
// language-prefixed concrete paths, and the compiler that turns the table
// into registered engine routes.
//
// Application code does not usually import this package directly; the root
// wayfind package wraps it behind the router facade. It is exported for
// tooling that needs to inspect or validate route tables.
package locroute
