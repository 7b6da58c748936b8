package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
)

const timeLayout = "2006-01-02 15:04"

// print writes v as indented JSON in -json mode and through text otherwise.
func (a *App) print(v any, text func(w io.Writer) error) error {
	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(a.out)
}

func (a *App) printMessage(message string) error {
	return a.print(models.MessageResponse{Message: message}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, message)
		return err
	})
}

func writeProductTable(w io.Writer, products []models.Product, pagination models.Pagination, noun string) error {
	if len(products) == 0 {
		_, err := fmt.Fprintf(w, "No %s found\n", noun)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tCATEGORY\tSELLER\tFAVORITE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Price, p.Category, sellerName(p), yesNo(p.IsFavorited))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Page %d of %d, %d %s in total\n",
		pagination.Page, pagination.TotalPages, pagination.Total, noun)
	return err
}

func writeProduct(w io.Writer, p models.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", p.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", p.Title)
	fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
	fmt.Fprintf(tw, "Price:\t%.2f\n", p.Price)
	if p.Category != "" {
		fmt.Fprintf(tw, "Category:\t%s\n", p.Category)
	}
	if p.Image != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", p.Image)
	}
	fmt.Fprintf(tw, "Seller:\t%s\n", sellerName(p))
	fmt.Fprintf(tw, "Favorite:\t%s\n", yesNo(p.IsFavorited))
	fmt.Fprintf(tw, "Created:\t%s\n", p.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(tw, "Updated:\t%s\n", p.UpdatedAt.Local().Format(timeLayout))
	return tw.Flush()
}

func sellerName(p models.Product) string {
	if p.SellerName == nil {
		return "-"
	}
	return *p.SellerName
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// FormatError renders err for the terminal. Validation failures are listed
// one field per line.
func FormatError(err error) string {
	var ve *validators.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, f := range ve.Fields {
		b.WriteString("\n  ")
		if f.Field != "" {
			b.WriteString(f.Field)
			b.WriteString(": ")
		}
		b.WriteString(f.Message)
	}
	return b.String()
}
