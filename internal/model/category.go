package model

// Category classifies a credit account by collateral backing. It is derived
// from the account type at evaluation time and never stored on the record.
type Category string

const (
	CategorySecured   Category = "secured"
	CategoryUnsecured Category = "unsecured"
	CategoryUnknown   Category = "unknown"
)
