// Package service implements the forum's use cases on top of the domain
// model and the store ports.
//
// Each service turns the raw strings of a request into value objects, asks
// the domain guards about cross-entity rules (unique email, existing
// maintopic, unique role name), and persists the resulting entity:
//
//   - UserService: registration, sign-in by email or login id, lookup
//   - MaintopicService: create, read, list, update, close and soft delete,
//     with owner-or-admin checks on every mutation
//   - DiscussionService: posting into open maintopics and paginated reads
//   - RoleService: role management and assignment to users
//
// Domain and guard errors are returned unchanged so the API layer can map
// them by Kind. Store failures are wrapped in ServiceError. The one
// exception is MaintopicService.Update, which reports every failure as a
// generic internal error and keeps the cause only in the logs.
package service
