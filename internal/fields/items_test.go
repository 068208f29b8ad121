package fields

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

var _ = Describe("ExtractItems", func() {
	var (
		vocab *heuristics.Config
		text  string
		items []entity.LineItem
	)

	BeforeEach(func() {
		vocab = heuristics.Default()
	})

	JustBeforeEach(func() {
		items = ExtractItems(vocab, text)
	})

	When("the listing holds quantity-prefixed and unit-priced lines", func() {
		BeforeEach(func() {
			text = "ITEM QTY PRICE\n2 Coffee $3.50\nWidget 2 @ $5.00 = $10.00\nTotal 13.50"
		})

		It("parses both shapes", func() {
			Expect(items).To(HaveLen(2))
			Expect(items[0]).To(Equal(entity.LineItem{
				Name: "Coffee", Quantity: 2, UnitPrice: 1.75, TotalPrice: 3.50,
			}))
			Expect(items[1]).To(Equal(entity.LineItem{
				Name: "Widget", Quantity: 2, UnitPrice: 5.00, TotalPrice: 10.00,
			}))
		})
	})

	When("a line is a bare name and price", func() {
		BeforeEach(func() {
			text = "House Salad 8.25"
		})

		It("defaults the quantity to one", func() {
			Expect(items).To(ConsistOf(entity.LineItem{
				Name: "House Salad", Quantity: 1, UnitPrice: 8.25, TotalPrice: 8.25,
			}))
		})
	})

	When("a section header precedes the listing", func() {
		BeforeEach(func() {
			text = "Stray 5.00\nQTY ITEM PRICE\n2 Coffee $3.50"
		})

		It("only parses lines after the header", func() {
			Expect(items).To(HaveLen(1))
			Expect(items[0].Name).To(Equal("Coffee"))
		})
	})

	When("lines carry payment or contact noise", func() {
		BeforeEach(func() {
			text = "Soup 4.00\nVISA CARD 12.00\nwww.example.com 1.00\nTotal 4.00"
		})

		It("skips them", func() {
			Expect(items).To(HaveLen(1))
			Expect(items[0].Name).To(Equal("Soup"))
		})
	})

	When("a line is a tip entry", func() {
		BeforeEach(func() {
			text = "Soup 4.00\nTip 2.00"
		})

		It("discards it", func() {
			Expect(items).To(HaveLen(1))
			Expect(items[0].Name).To(Equal("Soup"))
		})
	})

	When("the captured name looks like a zip code or product code", func() {
		BeforeEach(func() {
			text = "Seattle WA 98101 2.50"
		})

		It("rejects the line", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("the captured name is a single character", func() {
		BeforeEach(func() {
			text = "X 1.00"
		})

		It("rejects the line", func() {
			Expect(items).To(BeEmpty())
		})
	})
})
