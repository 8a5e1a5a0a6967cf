package component

// EntityID identifies a spawned entity for its whole life, never reused within a process
type EntityID uint64
