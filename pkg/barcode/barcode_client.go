package barcode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const userAgent = "Pantry-Backend/1.0 (+https://github.com/pantry-backend)"

// Product is what the lookup API knows about a barcode. A zero Product with
// Found false means the API answered but has no record.
type Product struct {
	Barcode  string
	Name     string
	Brand    string
	Category string
	ImageURL string
	Found    bool
}

type (
	ProductClient interface {
		FetchProduct(ctx context.Context, barcode string) (Product, error)
	}

	openFoodFactsClient struct {
		baseURL string
		client  *retryablehttp.Client
	}
)

func NewProductClient(baseURL string) ProductClient {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = 10 * time.Second

	return &openFoodFactsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  retryClient,
	}
}

func (c *openFoodFactsClient) FetchProduct(ctx context.Context, barcode string) (Product, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Product{}, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("fetch product %s: %w", barcode, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Product{}, err
	}

	if res.StatusCode == http.StatusNotFound {
		return Product{Barcode: barcode}, nil
	}
	if res.StatusCode != http.StatusOK {
		log.Warnf("barcode api returned %d for %s", res.StatusCode, barcode)
		return Product{}, fmt.Errorf("fetch product %s: unexpected status %d", barcode, res.StatusCode)
	}

	return parseProduct(barcode, string(body)), nil
}

func parseProduct(barcode, body string) Product {
	if gjson.Get(body, "status").Int() != 1 {
		return Product{Barcode: barcode}
	}

	fields := gjson.GetMany(body, "product.product_name", "product.brands", "product.categories", "product.image_url")
	name := strings.TrimSpace(fields[0].Str)
	if name == "" {
		return Product{Barcode: barcode}
	}

	return Product{
		Barcode:  barcode,
		Name:     name,
		Brand:    firstListEntry(fields[1].Str),
		Category: firstListEntry(fields[2].Str),
		ImageURL: fields[3].Str,
		Found:    true,
	}
}

// firstListEntry picks the first value of a comma separated field such as
// "Dairies, Milks, Whole milks".
func firstListEntry(s string) string {
	first, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(first)
}
