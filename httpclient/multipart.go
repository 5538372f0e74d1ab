package httpclient

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadFieldName is the form field that carries an uploaded file.
const UploadFieldName = "file"

// NewBoundary returns a fresh multipart boundary token.
func NewBoundary() string {
	return strings.ToUpper(uuid.NewString())
}

// MultipartContentType returns the Content-Type header value for boundary.
func MultipartContentType(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// EncodeMultipartFile builds a single-part multipart/form-data body holding
// data under the "file" field. The file name is written as given, without
// quoting. The layout is fixed:
//
//	\r\n--B\r\n
//	Content-Disposition: form-data; name="file"; filename="NAME"\r\n
//	Content-Type: application/octet-stream\r\n\r\n
//	DATA
//	\r\n--B--\r\n
func EncodeMultipartFile(boundary, fileName string, data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data) + 2*len(boundary) + len(fileName) + 160)

	buf.WriteString("\r\n--" + boundary + "\r\n")
	buf.WriteString(`Content-Disposition: form-data; name="` + UploadFieldName +
		`"; filename="` + fileName + "\"\r\n")
	buf.WriteString(HeaderContentType + ": " + ContentTypeOctet + "\r\n\r\n")
	buf.Write(data)
	buf.WriteString("\r\n--" + boundary + "--\r\n")

	return buf.Bytes()
}

// uploadFileName is the name reported for a file path: its last element.
func uploadFileName(path string) string {
	return filepath.Base(path)
}
