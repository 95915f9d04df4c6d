// Package mocks provides centralized mock implementations for testing.
//
// Store ports are mocked with testify/mock so tests can declare expectations:
//
//	users := new(mocks.UserStore)
//	users.On("ExistsByEmail", mock.Anything, "a@b.com").Return(false, nil)
//
// Auth collaborators use function fields with static defaults:
//
//	jwtSvc := &mocks.MockJWTService{Token: "access", RefreshToken: "refresh"}
//
// When adding a new mock, name the file after the interface being mocked and
// add a compile-time assertion that the mock implements it.
package mocks
