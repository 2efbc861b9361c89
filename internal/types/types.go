// internal/types/types.go
package types

// EntityID — идентификатор сущности внутри одного раунда.
type EntityID uint32
