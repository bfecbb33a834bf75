// Package catalog exposes the read-only job-offer and company catalogs.
//
// The catalogs are external collaborators of the account state store: the
// store references their ids (favorites, applications, company follows) but
// never mutates them. Data ships embedded with the binary; a real deployment
// would source it from a backend.
package catalog
