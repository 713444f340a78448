// Package entity holds the primitive field types carried in entity metadata:
// closed enumerations, angles, and villager data. Each closed enumeration
// encodes as the VarInt of its declaration ordinal; decode rejects any
// ordinal outside the declared set.
package entity
