// Package codec provides pluggable body encoders and response/error
// decoders for endpoint definitions.
//
//   - JSON: application/json bodies and responses (the default everywhere)
//   - Raw: pass-through []byte or string bodies with a caller-chosen MIME type
//   - Multipart: multipart/form-data bodies for file uploads
//   - JSONError: typed decoding of structured error responses
package codec
