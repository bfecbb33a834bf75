// Package profile provides the data model for the account state store.
//
// This package contains type definitions, deep-copy helpers and the seeded
// profile template only. All other internal packages import profile; profile
// imports nothing internal. This keeps the model the foundational layer with
// no circular dependencies.
//
// Key design constraints:
//   - JSON tags match the persisted document format exactly (camelCase,
//     inherited from the app's historical storage shape) - changing a tag is
//     a breaking change for every device with a stored session
//   - Every aliasable type has a Clone method; callers at ownership
//     boundaries must copy, never share slices or pointers
//   - Timestamps are human-readable labels, not machine time
package profile
