package capability

import "github.com/illmade-knight/action-dispatch/pkg/share"

// shareDocument is the private wire form of share parameters sent to
// capability backends. The URI travels as its string form rather than a
// marshalled url.URL struct.
type shareDocument struct {
	Text               *string  `json:"text,omitempty"`
	Title              *string  `json:"title,omitempty"`
	Subject            *string  `json:"subject,omitempty"`
	URI                *string  `json:"uri,omitempty"`
	Files              []string `json:"files,omitempty"`
	FileNames          []string `json:"fileNames,omitempty"`
	FallbackToDownload bool     `json:"fallbackToDownload,omitempty"`
	Thumbnail          []byte   `json:"thumbnail,omitempty"`
}

// toShareDocument converts capability parameters into their serializable form.
func toShareDocument(params share.ShareParams) shareDocument {
	doc := shareDocument{
		Text:               params.Text,
		Title:              params.Title,
		Subject:            params.Subject,
		Files:              params.Files,
		FileNames:          params.FileNames,
		FallbackToDownload: params.FallbackToDownload,
		Thumbnail:          params.Thumbnail,
	}
	if params.URI != nil {
		uri := params.URI.String()
		doc.URI = &uri
	}
	return doc
}
