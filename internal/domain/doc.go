// Package domain holds the forum's value objects (titles, descriptions,
// paragraphs, credentials, role names), the entities built from them and
// the single tagged Error type every validation failure uses.
//
// Constructors validate; the *Of and Restore* functions rebuild values that
// were already validated before they were persisted.
package domain
