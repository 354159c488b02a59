package commands

import "io"

// ImageUpload is a file received from the transport layer, streamed through
// to the image store without buffering the whole body.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}
