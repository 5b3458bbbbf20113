// Package mimetype enumerates the content-types the response builder
// can set directly, falling back to application/octet-stream for
// anything it doesn't know about.
package mimetype

// Type is a MIME content-type enum value.
type Type int

const (
	TextPlain Type = iota
	TextHTML
	TextCSS
	TextJavascript
	ApplicationJSON
	ApplicationXML
	ApplicationPDF
	ImageJPEG
	ImagePNG
	ImageGIF
	AudioMPEG
	VideoMP4
	MultipartFormData
	ApplicationOctetStream
)

var strings = map[Type]string{
	TextPlain:              "text/plain",
	TextHTML:               "text/html",
	TextCSS:                "text/css",
	TextJavascript:         "text/javascript",
	ApplicationJSON:        "application/json",
	ApplicationXML:         "application/xml",
	ApplicationPDF:         "application/pdf",
	ImageJPEG:              "image/jpeg",
	ImagePNG:               "image/png",
	ImageGIF:               "image/gif",
	AudioMPEG:              "audio/mpeg",
	VideoMP4:               "video/mp4",
	MultipartFormData:      "multipart/form-data",
	ApplicationOctetStream: "application/octet-stream",
}

// String returns the canonical wire representation of t, falling back
// to application/octet-stream for unmapped values.
func (t Type) String() string {
	if s, ok := strings[t]; ok {
		return s
	}
	return "application/octet-stream"
}
