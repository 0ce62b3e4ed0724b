package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
)

const productsPath = "/api/v1/products"

type listProductsEnvelope struct {
	Data             []models.Product        `json:"data"`
	PaginationResult models.PaginationResult `json:"paginationResult"`
}

type productEnvelope struct {
	Data models.Product `json:"data"`
}

// ListProducts fetches one catalog page. Every record is normalized at
// ingress, so callers only ever see canonical shapes.
func (c *HTTPClient) ListProducts(ctx context.Context, page, limit int) (ListProductsResult, error) {
	var envelope listProductsEnvelope
	if err := c.getJSON(ctx, productsPath, pageQuery(page, limit), &envelope); err != nil {
		return ListProductsResult{}, err
	}

	for i := range envelope.Data {
		envelope.Data[i].Normalize()
	}
	return ListProductsResult{Items: envelope.Data, Pagination: envelope.PaginationResult}, nil
}

// GetProduct fetches a single catalog record by id, normalized.
func (c *HTTPClient) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var envelope productEnvelope
	if err := c.getJSON(ctx, productsPath+"/"+id, nil, &envelope); err != nil {
		return models.Product{}, err
	}
	envelope.Data.Normalize()
	return envelope.Data, nil
}

// CreateProduct uploads a new product as multipart form data.
func (c *HTTPClient) CreateProduct(ctx context.Context, form ProductForm) (models.Product, error) {
	return c.sendProductForm(ctx, http.MethodPost, productsPath, form)
}

// UpdateProduct patches an existing product. Retained image references are
// sent as plain form values; new uploads as file parts.
func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, form ProductForm) (models.Product, error) {
	return c.sendProductForm(ctx, http.MethodPatch, productsPath+"/"+id, form)
}

// DeleteProduct removes a product.
func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, productsPath+"/"+id, nil, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) sendProductForm(ctx context.Context, method, path string, form ProductForm) (models.Product, error) {
	body, contentType, err := encodeProductForm(form)
	if err != nil {
		return models.Product{}, err
	}

	resp, err := c.do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return models.Product{}, err
	}
	defer resp.Body.Close()

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return models.Product{}, fmt.Errorf("decode %s response: %w", path, err)
	}
	envelope.Data.Normalize()
	return envelope.Data, nil
}

// encodeProductForm assembles the multipart body the backend expects:
// scalar fields, repeated sizes/colors values, kept image references as
// string values, then new image uploads as file parts.
func encodeProductForm(form ProductForm) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        form.Name,
		"price":       strconv.FormatFloat(form.Price, 'f', -1, 64),
		"description": form.Description,
		"category":    form.Category,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	for _, size := range form.Sizes {
		if err := w.WriteField("sizes", size); err != nil {
			return nil, "", fmt.Errorf("write sizes: %w", err)
		}
	}
	for _, color := range form.Colors {
		if err := w.WriteField("colors", color); err != nil {
			return nil, "", fmt.Errorf("write colors: %w", err)
		}
	}
	for _, ref := range form.KeptImages {
		if err := w.WriteField("images", ref); err != nil {
			return nil, "", fmt.Errorf("write kept image: %w", err)
		}
	}

	for _, img := range form.NewImages {
		part, err := w.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create image part %s: %w", img.Name, err)
		}
		if _, err := part.Write(img.Content); err != nil {
			return nil, "", fmt.Errorf("write image part %s: %w", img.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
