// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FieldValue is the predicate function for fieldvalue builders.
type FieldValue func(*sql.Selector)

// Otp is the predicate function for otp builders.
type Otp func(*sql.Selector)

// Permission is the predicate function for permission builders.
type Permission func(*sql.Selector)

// RequiredField is the predicate function for requiredfield builders.
type RequiredField func(*sql.Selector)

// Role is the predicate function for role builders.
type Role func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
