// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project, domain/timeline).
// This root package holds the sentinel error taxonomy and validation types
// shared by every layer.
package domain
