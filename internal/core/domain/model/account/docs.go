// Package account contains the Account aggregate: a marketplace participant
// bound to an immutable Telegram user ID, acting as either a customer or a
// worker. Accounts are created only by the onboarding command; the HTTP
// authentication path resolves them and never creates.
package account
