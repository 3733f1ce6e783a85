package products

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseSearchFilter extracts name, vendorName, code, minPrice and maxPrice from the query.
func ParseSearchFilter(q url.Values) (SearchFilter, error) {
	f := SearchFilter{
		Name:       strings.TrimSpace(q.Get("name")),
		VendorName: strings.TrimSpace(q.Get("vendorName")),
		Code:       strings.TrimSpace(q.Get("code")),
	}

	var err error
	if f.MinPrice, err = parsePrice(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice(q, "maxPrice"); err != nil {
		return f, err
	}
	return f, nil
}

func parsePrice(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %q", key, raw)
	}
	return &v, nil
}
