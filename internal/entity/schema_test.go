package entity

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ValidateRecord", func() {
	var rec ReceiptRecord

	BeforeEach(func() {
		rec = ReceiptRecord{
			PurchasedAt:  time.Date(2023, time.April, 12, 0, 0, 0, 0, time.UTC),
			MerchantName: "WHOLE FOODS",
			TotalAmount:  11.75,
			Items: []LineItem{
				{Name: "Coffee", Quantity: 2, UnitPrice: 1.75, TotalPrice: 3.50},
				{Name: "House Salad", Quantity: 1, UnitPrice: 8.25, TotalPrice: 8.25},
			},
		}
	})

	It("accepts a complete record", func() {
		Expect(ValidateRecord(rec)).To(Succeed())
	})

	It("rejects an empty merchant name", func() {
		rec.MerchantName = ""
		Expect(ValidateRecord(rec)).NotTo(Succeed())
	})

	It("rejects a negative total", func() {
		rec.TotalAmount = -1
		Expect(ValidateRecord(rec)).NotTo(Succeed())
	})

	It("rejects a zero-quantity item", func() {
		rec.Items[0].Quantity = 0
		Expect(ValidateRecord(rec)).NotTo(Succeed())
	})

	It("rejects an item with an empty name", func() {
		rec.Items[1].Name = ""
		Expect(ValidateRecord(rec)).NotTo(Succeed())
	})
})

var _ = Describe("ReceiptRecord", func() {
	It("sums line item totals", func() {
		rec := ReceiptRecord{Items: []LineItem{
			{TotalPrice: 3.50},
			{TotalPrice: 8.25},
		}}
		Expect(rec.ItemsTotal()).To(BeNumerically("~", 11.75, 1e-9))
	})

	It("sums to zero without items", func() {
		Expect(ReceiptRecord{}.ItemsTotal()).To(BeZero())
	})
})
