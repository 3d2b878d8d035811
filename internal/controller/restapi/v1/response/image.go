package response

type ProcessImage struct {
	SignedURL string `json:"signedUrl"`
	ImageID   string `json:"imageId"`
}

type ImageMetadata struct {
	ImageID      string   `json:"imageId"`
	OriginalName string   `json:"originalName"`
	Status       string   `json:"status"`
	StoragePath  string   `json:"storagePath"`
	ProcessedAt  string   `json:"processedAt,omitempty"`
	Tags         []string `json:"tags"`
	SignedURL    string   `json:"signedUrl"`
	ExpiresAt    string   `json:"expiresAt"`
}

type Error struct {
	Error string `json:"error" example:"message"`
}
