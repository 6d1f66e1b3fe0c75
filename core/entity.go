package core

// Entity is an opaque handle into an engine store, 0 is never issued
type Entity uint64
