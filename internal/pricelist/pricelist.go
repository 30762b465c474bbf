// Package pricelist holds the service center's catalog: document template →
// label and price, plus the template groups the cash register splits money by.
package pricelist

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Item struct {
	Template string          `json:"template"`
	Label    string          `json:"label"`
	Price    decimal.Decimal `json:"price"`
}

// PlateTemplate is the plate-manufacturing document; its price goes to the
// "plates" column and into the pavilion-2 payout.
const PlateTemplate = "number.docx"

var dkpTemplates = map[string]struct{}{
	"dkp.docx":        {},
	"dkp_pieces.docx": {},
	"dkp_dar.docx":    {},
}

var items = []Item{
	{Template: "mreo.docx", Label: "МРЭО (постановка/снятие)", Price: decimal.NewFromInt(500)},
	{Template: "DKP.docx", Label: "ДКП", Price: decimal.NewFromInt(500)},
	{Template: "dkp_dar.docx", Label: "ДКП дарение", Price: decimal.NewFromInt(500)},
	{Template: "dkp_pieces.docx", Label: "ДКП запчасти", Price: decimal.NewFromInt(500)},
	{Template: "doverennost.docx", Label: "Доверенность", Price: decimal.NewFromInt(300)},
	{Template: "zaiavlenie.docx", Label: "Заявление", Price: decimal.NewFromInt(200)},
	{Template: "akt_pp.docx", Label: "Акт приёма-передачи", Price: decimal.NewFromInt(300)},
	{Template: "prokuratura.docx", Label: "Прокуратура", Price: decimal.NewFromInt(400)},
	{Template: PlateTemplate, Label: "Изготовление номера", Price: decimal.NewFromInt(1500)},
}

// Items returns the catalog in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func normalize(template string) string {
	return strings.ToLower(strings.TrimSpace(template))
}

// LabelFor returns the display label for a template, or the template itself
// when it is not in the catalog.
func LabelFor(template string) string {
	for _, it := range items {
		if it.Template == template {
			return it.Label
		}
	}
	return template
}

// PriceFor returns the catalog price for a template, or false when unknown.
func PriceFor(template string) (decimal.Decimal, bool) {
	for _, it := range items {
		if it.Template == template {
			return it.Price, true
		}
	}
	return decimal.Zero, false
}

// IsDKP reports whether the template is one of the sale-contract documents.
// Matching is case-insensitive on the trimmed name.
func IsDKP(template string) bool {
	_, ok := dkpTemplates[normalize(template)]
	return ok
}

// IsPlate reports whether the template is the plate-manufacturing document.
func IsPlate(template string) bool {
	return normalize(template) == PlateTemplate
}
