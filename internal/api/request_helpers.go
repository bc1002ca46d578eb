package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// decodeValidated reads the request body as a JSON object and checks it
// against schema. It returns the normalized members, a
// *domain.MalformedRequestError when the body is not a JSON object, or a
// *domain.ValidationError listing every violated constraint.
func decodeValidated(
	w http.ResponseWriter,
	r *http.Request,
	schema domain.Schema,
) (map[string]interface{}, error) {
	obj, err := shared.DecodeJSONObject(w, r)
	if err != nil {
		return nil, err
	}

	values := shared.NormalizeValues(obj)
	if verr := schema.Validate(values); verr != nil {
		return nil, verr
	}
	return values, nil
}

// parseProductFilter reads the optional listing filters from the query string.
// Empty parameters are treated as absent. Values that cannot be parsed are
// reported as type violations alongside any schema violations.
func parseProductFilter(query url.Values) (domain.ProductFilter, error) {
	var filter domain.ProductFilter
	verr := &domain.ValidationError{}
	values := make(map[string]interface{}, 4)

	if v := query.Get("category"); v != "" {
		values["category"] = v
	}
	for _, name := range []string{"min_price", "max_price"} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			verr.Add(name, domain.KindType, "value is not a valid number")
			continue
		}
		values[name] = f
	}
	if raw := query.Get("in_stock"); raw != "" {
		b, ok := parseQueryBool(raw)
		if !ok {
			verr.Add("in_stock", domain.KindType, "value could not be parsed to a boolean")
		} else {
			values["in_stock"] = b
		}
	}

	verr.Merge(domain.ProductFilterSchema().Validate(values))
	if verr.HasViolations() {
		return filter, verr
	}

	if v, ok := values["category"].(string); ok {
		c := domain.Category(v)
		filter.Category = &c
	}
	if v, ok := values["min_price"].(float64); ok {
		filter.MinPrice = &v
	}
	if v, ok := values["max_price"].(float64); ok {
		filter.MaxPrice = &v
	}
	if v, ok := values["in_stock"].(bool); ok {
		filter.InStock = &v
	}
	return filter, nil
}

// parseQueryBool accepts the strconv.ParseBool forms plus yes/no and on/off.
func parseQueryBool(raw string) (bool, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}

// pathID returns the {id} URL parameter. Identifiers are opaque: any value
// that does not name a stored record is reported as not found.
func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
