package entity

// UploadedImage describes an image stored in the bucket.
type UploadedImage struct {
	URL      string
	Key      string
	BlurHash string
}
