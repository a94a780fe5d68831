// Package violation defines the violation data model and the collector
// used to accumulate validation outcomes during a request.
//
// A Violation is plain data: the dotted field path it belongs to
// (category), the constraint kind that produced it, a resolved
// human-readable message, and a severity. Violations are never thrown;
// they are collected into a Set that implements the error interface so
// an entire validation pass can travel through ordinary error returns.
//
// The Set collector supports conditional accumulation (AddIf, Ensure),
// category queries for view templates (From, Join), and severity
// splits so errors can be presented independently from warnings and
// informational notices:
//
//	var set violation.Set
//	set.Ensure(price > 0, violation.New("item.price", "min", "must be positive"))
//	set.AddIf(stock < 5, violation.Warn("item.stock", "low_stock", "stock is low"))
//
//	if set.HasErrors() {
//	    return set // caller inspects with violation.Extract
//	}
//
// View-layer usage mirrors template queries:
//
//	set.Errors().From("item.price").Join(", ")
//	set.Warnings().From("item.stock")
package violation
