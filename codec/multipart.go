package codec

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	"github.com/google/uuid"

	"github.com/kbukum/restkit"
)

// Form is a multipart/form-data body value. Pass it as the body of an
// endpoint whose encoder is a Multipart.
type Form struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload fields.
	Files []FileField
}

// FileField represents a file to upload in a multipart body.
type FileField struct {
	// FieldName is the form field name (e.g., "file", "audio").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type (e.g., "audio/wav"). If empty, uses application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for large files.
	Reader io.Reader
}

// Multipart encodes Form values as multipart/form-data. The boundary is
// fixed at construction so the content type is stable across encodes.
type Multipart struct {
	boundary string
}

var _ restkit.BodyEncoder = (*Multipart)(nil)

// NewMultipart creates a multipart encoder with a random boundary.
func NewMultipart() *Multipart {
	return &Multipart{boundary: "restkit-" + uuid.NewString()}
}

// ContentType returns the multipart content type including the boundary.
func (m *Multipart) ContentType() string {
	return "multipart/form-data; boundary=" + m.boundary
}

// Encode builds the multipart body from a Form or *Form value.
func (m *Multipart) Encode(v any) ([]byte, error) {
	var form *Form
	switch x := v.(type) {
	case *Form:
		form = x
	case Form:
		form = &x
	default:
		return nil, fmt.Errorf("codec: multipart body must be a Form, got %T", v)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(m.boundary); err != nil {
		return nil, err
	}

	for k, v := range form.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	for _, f := range form.Files {
		part, err := createPart(w, f)
		if err != nil {
			return nil, err
		}
		if f.Data != nil {
			if _, err := part.Write(f.Data); err != nil {
				return nil, err
			}
		} else if f.Reader != nil {
			if _, err := io.Copy(part, f.Reader); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// createPart opens a file part, honoring a custom content type when set.
func createPart(w *multipart.Writer, f FileField) (io.Writer, error) {
	if f.ContentType == "" {
		return w.CreateFormFile(f.FieldName, f.FileName)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
	header.Set("Content-Type", f.ContentType)
	return w.CreatePart(header)
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
