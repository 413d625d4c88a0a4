package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"

	"github.com/Sternrassler/phrase-client/pkg/models"
)

// encodeBody serializes a request payload. Payloads carrying attachments are
// sent as multipart/form-data, everything else as JSON.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	if u, ok := body.(models.Uploadable); ok {
		if files := u.Attachments(); len(files) > 0 {
			return encodeMultipart(body, files)
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("marshal json body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// encodeMultipart writes the JSON fields of body as form fields, then the
// attachments as file parts. Fields are written in name order.
func encodeMultipart(body any, files map[string]*models.Attachment) (io.Reader, string, error) {
	fields, err := formFields(body)
	if err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, name := range sortedKeys(fields) {
		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	for _, name := range sortedKeys(files) {
		file := files[name]
		filename := file.Filename
		if filename == "" {
			filename = name
		}
		part, err := w.CreateFormFile(name, filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", name, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy attachment %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// formFields flattens the JSON form of body into form values. Lists are
// comma separated, which is how the API takes tags in forms.
func formFields(body any) (map[string]string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal form body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("form body must be an object: %w", err)
	}

	fields := make(map[string]string, len(raw))
	for name, v := range raw {
		s, ok, err := formValue(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		if ok {
			fields[name] = s
		}
	}
	return fields, nil
}

func formValue(v any) (string, bool, error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case json.Number:
		return v.String(), true, nil
	case bool:
		if v {
			return "true", true, nil
		}
		return "false", true, nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok, err := formValue(item)
			if err != nil {
				return "", false, err
			}
			if ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
