package products

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchFilter(t *testing.T) {
	q, err := url.ParseQuery("name=phone&vendorName=%20acme&code=C1&minPrice=10&maxPrice=20.5")
	require.NoError(t, err)

	f, err := ParseSearchFilter(q)
	require.NoError(t, err)
	assert.Equal(t, "phone", f.Name)
	assert.Equal(t, "acme", f.VendorName)
	assert.Equal(t, "C1", f.Code)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 10.0, *f.MinPrice)
	assert.Equal(t, 20.5, *f.MaxPrice)
}

func TestParseSearchFilterOptionalBounds(t *testing.T) {
	f, err := ParseSearchFilter(url.Values{"maxPrice": {"5"}})
	require.NoError(t, err)
	assert.Nil(t, f.MinPrice)
	assert.Equal(t, 5.0, *f.MaxPrice)
}

func TestParseSearchFilterInvalidPrice(t *testing.T) {
	_, err := ParseSearchFilter(url.Values{"minPrice": {"cheap"}})
	assert.Error(t, err)
}
