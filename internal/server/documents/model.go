// Package documents implements the document manager: per-user metadata plus
// an object store for file content. Metadata lives in process memory only.
package documents

// Document is stored document metadata, keyed per user.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UploadDate string `json:"uploadDate"`
	Size       string `json:"size"`
}
