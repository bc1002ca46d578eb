package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// MaxBodyBytes bounds the size of accepted request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSONObject reads the request body as a single JSON object and returns
// its members. Strings, numbers (as float64), booleans, null, arrays and nested
// objects are returned the way encoding/json decodes them into interface{}.
// Any other body yields a *domain.MalformedRequestError.
func DecodeJSONObject(w http.ResponseWriter, r *http.Request) (map[string]interface{}, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, domain.NewMalformedRequestError("body", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domain.NewMalformedRequestError("body", errors.New("empty body"))
	}
	if trimmed[0] != '{' {
		return nil, domain.NewMalformedRequestError("body", errors.New("expected a JSON object"))
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil, domain.NewMalformedRequestError("body", err)
	}
	if dec.More() {
		return nil, domain.NewMalformedRequestError("body", fmt.Errorf("unexpected data after JSON object"))
	}

	return obj, nil
}

// NormalizeValues converts decoded JSON members to the value types expected by
// domain.Schema: arrays whose elements are all strings become []string and
// null members are dropped. Other values are passed through unchanged so that
// the schema reports them as type violations.
func NormalizeValues(obj map[string]interface{}) map[string]interface{} {
	values := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		switch tv := v.(type) {
		case nil:
			continue
		case []interface{}:
			if strs, ok := stringSlice(tv); ok {
				values[k] = strs
				continue
			}
			values[k] = tv
		default:
			values[k] = v
		}
	}
	return values
}

func stringSlice(items []interface{}) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
