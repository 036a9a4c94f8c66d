package depot

// Systems are plain functions whose parameters are query views, for example
//
//	func move(pos *depot.CompMut[Position], vel *depot.Comp[Velocity]) { ... }
//
// RunN and ExecN resolve the parameters left to right. The first failure
// releases whatever was already resolved and is returned without calling the
// system. Two exclusive views of one type in the same system therefore fail
// with BorrowMutError, while repeated shared views of one type are allowed.
//
// Once the system returns, every view is released and, if nothing else in the
// world is still borrowed, the operation queue is flushed.

//go:generate go run ./cmd/gensystems -o system_generated.go -max 8
