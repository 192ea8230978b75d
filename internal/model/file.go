package model

// FileMeta is the per-file upload result.
type FileMeta struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
