// Package storage keeps catalog bundles in S3 compatible object storage.
//
// Bundles live under a prefix, one object per locale:
//
//	locales/en.json
//	locales/de.yaml
//	locales/pt-BR.toml
//
// [New] talks to S3 through aws-sdk-go-v2; [NewMemory] is an in-process
// stand-in with the same behavior. S3 failures are reported as
// [ErrNotFound], [ErrAccessDenied] or the operation's own sentinel.
package storage
