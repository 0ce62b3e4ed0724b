package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/paginator"
	"github.com/rofaidaezzat/fashon-dashboard/internal/validation"
)

// readFile is a test seam for reading image files picked in product forms.
var readFile = os.ReadFile

// Products renders the current catalog page and makes the product listing
// the target of next/prev/goto.
func (a *App) Products(ctx context.Context) error {
	a.activeView = viewProducts
	return a.renderProducts(ctx)
}

func (a *App) renderProducts(ctx context.Context) error {
	res, err := a.productService.List(ctx, a.productPage)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.productList = res.Items
	a.productPages = res.Pagination.NumberOfPages

	if len(res.Items) == 0 {
		fmt.Println("No products")
	}
	for i, p := range res.Items {
		fmt.Printf("%2d. %-30s %10.2f  %s\n", i+1, p.Name, p.Price, p.Category)
	}
	printPager(a.productPage, a.productPages)
	return nil
}

// printPager renders the page selector row, e.g. "pages: 1 … 4 [5] 6 … 10".
func printPager(page, totalPages int) {
	if totalPages <= 1 {
		return
	}
	entries := paginator.Pages(page, totalPages)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Ellipsis && e.Page == page {
			parts = append(parts, fmt.Sprintf("[%d]", e.Page))
			continue
		}
		parts = append(parts, e.String())
	}
	fmt.Println("pages:", strings.Join(parts, " "))
}

// resolveProduct maps a 1-based row number from the listing as last rendered
// to the product it shows.
func (a *App) resolveProduct(arg string) (models.Product, error) {
	var zero models.Product
	if len(a.productList) == 0 {
		return zero, fmt.Errorf("no product listing on screen; run 'products' first")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.productList) {
		return zero, fmt.Errorf("row must be a number between 1 and %d", len(a.productList))
	}
	return a.productList[n-1], nil
}

// View fetches and displays one product in full, with image references
// resolved to absolute URLs.
func (a *App) View(ctx context.Context, arg string) error {
	row, err := a.resolveProduct(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	p, err := a.productService.Get(ctx, row.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	p.Normalize()

	fmt.Println(p.Name)
	fmt.Printf("Price: %.2f\n", p.Price)
	fmt.Printf("Category: %s\n", p.Category)
	fmt.Printf("Sizes: %s\n", strings.Join(p.Sizes, ", "))
	fmt.Printf("Colors: %s\n", strings.Join(p.Colors, ", "))
	fmt.Println(p.Description)
	for _, img := range models.ResolveImages(p) {
		fmt.Println(models.ResolveImageURL(img, a.config.AssetBaseURL))
	}
	return nil
}

// Add collects a new product interactively and creates it.
func (a *App) Add(ctx context.Context) error {
	form, err := a.inputProductForm(ctx, models.Product{})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	created, err := a.productService.Create(ctx, form)
	if err != nil {
		reportProductError(err)
		return err
	}

	fmt.Printf("Created %q\n", created.Name)
	if a.activeView == viewProducts {
		return a.renderProducts(ctx)
	}
	return nil
}

// Edit re-collects the fields of product row n, prefilled with its current
// values, and patches it.
func (a *App) Edit(ctx context.Context, arg string) error {
	row, err := a.resolveProduct(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	current, err := a.productService.Get(ctx, row.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	current.Normalize()

	form, err := a.inputProductForm(ctx, current)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	updated, err := a.productService.Update(ctx, current.ID, form)
	if err != nil {
		reportProductError(err)
		return err
	}

	fmt.Printf("Updated %q\n", updated.Name)
	if a.activeView == viewProducts {
		return a.renderProducts(ctx)
	}
	return nil
}

// Delete removes product row n after an explicit confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	row, err := a.resolveProduct(arg)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", row.Name), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.productService.Delete(ctx, row.ID); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Deleted %q\n", row.Name)
	if a.activeView == viewProducts {
		return a.renderProducts(ctx)
	}
	return nil
}

// inputProductForm walks the interactive product form. With a zero current
// product it behaves as a create form; otherwise every field defaults to the
// product's stored value and the user keeps existing images by number.
func (a *App) inputProductForm(ctx context.Context, current models.Product) (api.ProductForm, error) {
	var zero api.ProductForm

	name, err := GetTextWithDefault(a.reader, "Name", current.Name, os.Stdout)
	if err != nil {
		return zero, err
	}

	price := current.Price
	priceText, err := GetTextWithDefault(a.reader, "Price", strconv.FormatFloat(current.Price, 'f', -1, 64), os.Stdout)
	if err != nil {
		return zero, err
	}
	if priceText != "" {
		price, err = strconv.ParseFloat(priceText, 64)
		if err != nil {
			return zero, fmt.Errorf("price must be a number")
		}
	}

	category, err := a.inputCategory(current.Category)
	if err != nil {
		return zero, err
	}

	sizesText, err := GetTextWithDefault(a.reader, "Sizes (comma-separated)", strings.Join(current.Sizes, ", "), os.Stdout)
	if err != nil {
		return zero, err
	}

	colorsText, err := GetTextWithDefault(a.reader, "Colors (comma-separated)", strings.Join(current.Colors, ", "), os.Stdout)
	if err != nil {
		return zero, err
	}

	description, err := GetMultiline(a.reader, "Description (double Enter to finish):", os.Stdout)
	if err != nil {
		return zero, err
	}
	if description == "" {
		description = current.Description
	}

	kept, err := a.inputKeptImages(models.ResolveImages(current))
	if err != nil {
		return zero, err
	}

	newImages, err := a.inputNewImages()
	if err != nil {
		return zero, err
	}

	return api.ProductForm{
		Name:        name,
		Price:       price,
		Description: description,
		Category:    category,
		Sizes:       splitList(sizesText),
		Colors:      splitList(colorsText),
		KeptImages:  kept,
		NewImages:   newImages,
	}, nil
}

// inputCategory shows the numbered category list and accepts either a number
// or a literal category name. Empty input keeps the current value.
func (a *App) inputCategory(current string) (string, error) {
	for i, c := range models.Categories {
		fmt.Printf("%d. %s\n", i+1, c)
	}
	answer, err := GetTextWithDefault(a.reader, "Category (number or name)", current, os.Stdout)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(models.Categories) {
		return models.Categories[n-1], nil
	}
	return answer, nil
}

// inputKeptImages lists the product's stored images and asks which to keep.
// Empty input keeps all of them.
func (a *App) inputKeptImages(current []string) ([]string, error) {
	if len(current) == 0 {
		return nil, nil
	}
	for i, img := range current {
		fmt.Printf("%d. %s\n", i+1, img)
	}
	answer, err := getSimpleText(a.reader, "Images to keep (comma-separated numbers, empty keeps all)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return current, nil
	}

	var kept []string
	for _, part := range splitList(answer) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(current) {
			return nil, fmt.Errorf("image number must be between 1 and %d", len(current))
		}
		kept = append(kept, current[n-1])
	}
	return kept, nil
}

// inputNewImages reads local file paths and loads their content for upload.
func (a *App) inputNewImages() ([]api.ImageFile, error) {
	answer, err := getSimpleText(a.reader, "New image files (comma-separated paths, empty for none)", os.Stdout)
	if err != nil {
		return nil, err
	}

	var files []api.ImageFile
	for _, path := range splitList(answer) {
		content, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", path, err)
		}
		files = append(files, api.ImageFile{Name: filepath.Base(path), Content: content})
	}
	return files, nil
}

// reportProductError prints validation problems per field and logs
// everything else.
func reportProductError(err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields() {
			fmt.Printf("%s %s\n", field, msg)
		}
		return
	}
	log.Printf("error: %v", err)
}
