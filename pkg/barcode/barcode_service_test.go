package barcode

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/entities"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryBarcodeRepository struct {
	products map[string]*entities.BarcodeProduct
}

func (r *memoryBarcodeRepository) GetProduct(_ context.Context, barcode string) (*entities.BarcodeProduct, error) {
	product, ok := r.products[barcode]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (r *memoryBarcodeRepository) SaveProduct(_ context.Context, product *entities.BarcodeProduct) error {
	r.products[product.Barcode] = product
	return nil
}

const milkJSON = `{
	"code": "3017620422003",
	"status": 1,
	"product": {
		"product_name": "Whole Milk",
		"brands": "Farm Fresh, Acme",
		"categories": "Dairies, Milks",
		"image_url": "https://images.example/milk.jpg"
	}
}`

func newLookupServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/api/v2/product/3017620422003.json":
			_, _ = w.Write([]byte(milkJSON))
		case "/api/v2/product/12345678.json":
			_, _ = w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestService(t *testing.T, hits *int32) (BarcodeService, *memoryBarcodeRepository) {
	repo := &memoryBarcodeRepository{products: map[string]*entities.BarcodeProduct{}}
	server := newLookupServer(t, hits)
	return NewBarcodeService(repo, NewProductClient(server.URL+"/")), repo
}

func TestLookup_FetchesAndCaches(t *testing.T) {
	var hits int32
	svc, repo := newTestService(t, &hits)

	product, err := svc.Lookup(context.Background(), "3017620422003")
	require.NoError(t, err)

	assert.Equal(t, domain.BarcodeProductResponse{
		Barcode:  "3017620422003",
		Name:     "Whole Milk",
		Brand:    "Farm Fresh",
		Category: "Dairies",
		ImageURL: "https://images.example/milk.jpg",
	}, product)
	require.Contains(t, repo.products, "3017620422003")

	again, err := svc.Lookup(context.Background(), "3017620422003")
	require.NoError(t, err)
	assert.Equal(t, product, again)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "second lookup is served from the cache")
}

func TestLookup_NotFoundIsCached(t *testing.T) {
	var hits int32
	svc, repo := newTestService(t, &hits)

	_, err := svc.Lookup(context.Background(), "12345678")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	require.Contains(t, repo.products, "12345678")
	assert.False(t, repo.products["12345678"].Found)

	_, err = svc.Lookup(context.Background(), "12345678")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestLookup_HTTPNotFound(t *testing.T) {
	var hits int32
	svc, _ := newTestService(t, &hits)

	_, err := svc.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLookup_InvalidBarcode(t *testing.T) {
	var hits int32
	svc, _ := newTestService(t, &hits)

	for _, code := range []string{"", "1234567", "123456789012345", "12345abc"} {
		_, err := svc.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, domain.ErrInvalidBarcode, code)
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestParseProduct_MissingName(t *testing.T) {
	product := parseProduct("12345670", `{"status": 1, "product": {"brands": "Acme"}}`)
	assert.False(t, product.Found)
	assert.Equal(t, "12345670", product.Barcode)
}
