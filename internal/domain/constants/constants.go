// Package constants holds shared provider identifiers and storage key
// prefixes used across infrastructure adapters.
package constants

// Pub/Sub provider identifiers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Object storage provider identifiers.
const (
	StorageProviderMinio = "minio"
	StorageProviderS3    = "s3"
)

// Object storage key prefixes. Keys are <prefix>/<uuid>.<ext> so an
// object's purpose is readable from its key alone.
const (
	StoragePrefixMedia     = "media"
	StoragePrefixThumbnail = "thumbnails"
	StoragePrefixSlip      = "slips"
)
