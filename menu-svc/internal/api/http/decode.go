package httpapi

import (
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/schema"

	"restoran/menu-svc/internal/domain"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(s string) reflect.Value {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return reflect.ValueOf(t)
			}
		}
		return reflect.Value{}
	})
	return d
}

// decodeBody reads a JSON or multipart body into dst. Only the fields present
// in the request are written, so decoding onto a loaded entity gives PATCH
// semantics. The uploaded "image" part is returned when there is one.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (*multipart.FileHeader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON format: %v", domain.ErrInvalidInput, err)
		}
		return nil, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("%w: invalid form: %v", domain.ErrInvalidInput, err)
	}
	if err := formDecoder.Decode(dst, r.MultipartForm.Value); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		return files[0], nil
	}
	return nil, nil
}
