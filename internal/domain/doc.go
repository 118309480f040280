// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/apiaccess). This root
// package holds the sentinel errors used for cross-cutting classification
// and the Optional presence wrapper used by partial updates.
package domain
