package handlers

// Handlers holds the dependencies shared by all endpoints. The
// product-form endpoints are stateless transforms; only the upload
// handler touches the filesystem.
type Handlers struct {
	UploadDir string // local directory uploaded images land in
	BaseURL   string // public base URL the upload handler returns
}
